package twitch_service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"twitch_helix_client/internal/models"
)

var ErrEmptyQuery = errors.New("at least one value is required")

type twitchClient interface {
	GetUsers(ctx context.Context, logins ...string) ([]models.User, error)
	GetStreams(ctx context.Context, streamerIDs ...string) ([]models.Stream, error)
	GetGames(ctx context.Context, gameIDs ...string) ([]models.Game, error)
}

type TwitchService struct {
	twitchClient twitchClient
}

func NewService(twitchClient twitchClient) *TwitchService {
	return &TwitchService{
		twitchClient: twitchClient,
	}
}

// splitValues turns "a, b,,c" into [a b c].
func splitValues(raw string) []string {
	values := []string{}
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}
	return values
}
