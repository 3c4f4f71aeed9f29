package twitch_client

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"twitch_helix_client/internal/models"
	"twitch_helix_client/internal/reporter"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// doRequest sends req and returns the response body. Non-2xx answers are
// returned as *ResponseError. Transport failures keep their *url.Error with
// credentials masked in the URL.
func (twc *TwitchClient) doRequest(req *http.Request, endpoint string) ([]byte, error) {
	start := time.Now()

	resp, err := twc.httpClient.Do(req)
	if err != nil {
		twc.metrics.ObserveRequest(endpoint, "error", time.Since(start))
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = reporter.RedactURL(req.URL)
		}
		return nil, errors.Wrapf(err, "%s %s", req.Method, endpoint)
	}

	defer resp.Body.Close()

	readedResp, err := io.ReadAll(resp.Body)
	twc.metrics.ObserveRequest(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s response", endpoint)
	}

	twc.log.Debug(string(readedResp))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ResponseError{
			StatusCode: resp.StatusCode,
			Status:     statusMessage(resp),
			Message:    upstreamMessage(readedResp),
		}
	}

	return readedResp, nil
}

// fail reports err together with the request that caused it and returns err.
func (twc *TwitchClient) fail(req *http.Request, err error) error {
	twc.reporter.ReportRequest(err, req)
	twc.log.Errorf("Received an error from Twitch: %s", err)
	return err
}

func statusMessage(resp *http.Response) string {
	msg := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return msg
}

// upstreamMessage prefers the body's message field and falls back to the
// whole body as compact JSON.
func upstreamMessage(body []byte) string {
	var errResp models.TwitchErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		quoted, _ := json.MarshalToString(string(body))
		return quoted
	}

	compact, err := json.MarshalToString(payload)
	if err != nil {
		return string(body)
	}
	return compact
}

func decodeData(body []byte) ([]models.Resource, error) {
	var dataResp models.HelixDataResponse
	if err := json.Unmarshal(body, &dataResp); err != nil {
		return nil, errors.Wrap(err, "decode helix response")
	}

	if dataResp.Data == nil {
		return []models.Resource{}, nil
	}
	return dataResp.Data, nil
}
