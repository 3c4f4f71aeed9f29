package twitch_client

import (
	"context"

	"twitch_helix_client/internal/models"
)

// GetStreams returns the live streams of the given broadcaster ids. Offline
// broadcasters are simply absent from the result.
func (twc *TwitchClient) GetStreams(ctx context.Context, streamerIDs ...string) ([]models.Stream, error) {
	streams, err := twc.getData(ctx, "helix/streams", "user_id", streamerIDs)
	if err != nil {
		return nil, err
	}

	twc.log.Infof("Received %d streams from Twitch", len(streams))

	return streams, nil
}
