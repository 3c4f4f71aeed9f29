package twitch_service

import (
	"context"

	"github.com/pkg/errors"

	"twitch_helix_client/internal/models"
)

func (tws *TwitchService) GetGames(ctx context.Context, gameIDs string) ([]models.Game, error) {
	values := splitValues(gameIDs)
	if len(values) == 0 {
		return nil, errors.Wrap(ErrEmptyQuery, "id")
	}

	return tws.twitchClient.GetGames(ctx, values...)
}
