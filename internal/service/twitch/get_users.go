package twitch_service

import (
	"context"

	"github.com/pkg/errors"

	"twitch_helix_client/internal/models"
)

func (tws *TwitchService) GetUsers(ctx context.Context, logins string) ([]models.User, error) {
	values := splitValues(logins)
	if len(values) == 0 {
		return nil, errors.Wrap(ErrEmptyQuery, "login")
	}

	return tws.twitchClient.GetUsers(ctx, values...)
}
