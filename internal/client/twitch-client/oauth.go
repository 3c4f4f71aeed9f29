package twitch_client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"twitch_helix_client/internal/models"
)

const (
	tokenEndpoint  = "oauth2/token"
	tokenFlightKey = "client_credentials"
)

// authenticate returns the held token or fetches one with the client
// credentials grant. Concurrent callers share a single in-flight request.
// TODO: expires_in from the token response is ignored, the token is kept forever.
func (twc *TwitchClient) authenticate(ctx context.Context) (string, error) {
	if token := twc.currentToken(); token != "" {
		return token, nil
	}

	token, err, _ := twc.tokenFlight.Do(tokenFlightKey, func() (interface{}, error) {
		if token := twc.currentToken(); token != "" {
			return token, nil
		}

		// the request is shared with other waiters, so the leader's
		// cancellation must not end it
		token, err := twc.TwitchOAuthGetToken(context.WithoutCancel(ctx))
		if err != nil {
			twc.metrics.ObserveTokenRequest("failure")
			return "", err
		}

		twc.metrics.ObserveTokenRequest("success")
		twc.setToken(token)
		return token, nil
	})
	if err != nil {
		return "", err
	}

	return token.(string), nil
}

// TwitchOAuthGetToken requests a new app access token. It does not touch the
// cached token.
func (twc *TwitchClient) TwitchOAuthGetToken(ctx context.Context) (string, error) {
	creds := twc.credentials()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, twc.idHost+"/"+tokenEndpoint, nil)
	if err != nil {
		return "", errors.Wrap(err, "NewRequest")
	}

	query := req.URL.Query()
	query.Add("client_id", creds.ClientID)
	query.Add("client_secret", creds.ClientSecret)
	query.Add("grant_type", "client_credentials")
	req.URL.RawQuery = query.Encode()

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	readedResp, err := twc.doRequest(req, tokenEndpoint)
	if err != nil {
		var respErr *ResponseError
		if errors.As(err, &respErr) {
			return "", twc.fail(req, &UpstreamAuthError{ResponseError: respErr})
		}
		return "", err
	}

	var tokenInfo models.TwitchOAuthGetTokenResponse
	if err := json.Unmarshal(readedResp, &tokenInfo); err != nil {
		return "", errors.Wrap(err, "decode token response")
	}

	if tokenInfo.AccessToken == "" {
		return "", twc.fail(req, &UpstreamAuthError{ResponseError: &ResponseError{
			StatusCode: http.StatusOK,
			Status:     http.StatusText(http.StatusOK),
			Message:    "response has no access_token",
		}})
	}

	twc.log.Infof("Got an access token from Twitch, expires in %ds", tokenInfo.ExpiresIn)

	return tokenInfo.AccessToken, nil
}
