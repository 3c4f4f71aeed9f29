package twitch_client

import (
	"context"

	"twitch_helix_client/internal/models"
)

// GetUsers looks users up by login name.
func (twc *TwitchClient) GetUsers(ctx context.Context, logins ...string) ([]models.User, error) {
	users, err := twc.getData(ctx, "helix/users", "login", logins)
	if err != nil {
		return nil, err
	}

	twc.log.Infof("Received %d users from Twitch", len(users))

	return users, nil
}
