package twitch_service

import (
	"context"

	"github.com/pkg/errors"

	"twitch_helix_client/internal/models"
)

func (tws *TwitchService) GetStreams(ctx context.Context, streamerIDs string) ([]models.Stream, error) {
	values := splitValues(streamerIDs)
	if len(values) == 0 {
		return nil, errors.Wrap(ErrEmptyQuery, "user_id")
	}

	return tws.twitchClient.GetStreams(ctx, values...)
}
