package twitch_client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"twitch_helix_client/internal/models"
)

// getData authenticates, then GETs a Helix collection with one query
// parameter repeated per value and returns its data array as is.
func (twc *TwitchClient) getData(ctx context.Context, endpoint, param string, values []string) ([]models.Resource, error) {
	token, err := twc.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twc.apiHost+"/"+endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "NewRequest")
	}

	query := req.URL.Query()
	for _, value := range values {
		query.Add(param, value)
	}
	req.URL.RawQuery = query.Encode()

	req.Header.Add("Client-Id", twc.credentials().ClientID)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))

	readedResp, err := twc.doRequest(req, endpoint)
	if err != nil {
		var respErr *ResponseError
		if errors.As(err, &respErr) {
			return nil, twc.fail(req, &UpstreamApiError{ResponseError: respErr})
		}
		return nil, err
	}

	return decodeData(readedResp)
}
