package twitch_client

import (
	"context"

	"twitch_helix_client/internal/models"
)

func (twc *TwitchClient) GetGames(ctx context.Context, gameIDs ...string) ([]models.Game, error) {
	games, err := twc.getData(ctx, "helix/games", "id", gameIDs)
	if err != nil {
		return nil, err
	}

	twc.log.Infof("Received %d games from Twitch", len(games))

	return games, nil
}
