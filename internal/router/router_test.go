package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	twitchClient "twitch_helix_client/internal/client/twitch-client"
	twitchHandler "twitch_helix_client/internal/handlers/twitch"
	"twitch_helix_client/internal/metrics"
	twitchService "twitch_helix_client/internal/service/twitch"
)

func TestWebRouter_Greeting(t *testing.T) {
	srv := httptest.NewServer(NewWebRouter(prometheus.NewRegistry()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/?name=Ada")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWebRouter_UnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()

	NewWebRouter(prometheus.NewRegistry()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebRouter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveTokenRequest("success")
	rec := httptest.NewRecorder()

	NewWebRouter(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `twitch_client_token_requests_total{result="success"} 1`)
}

func TestDebugRouter_UsersThroughClient(t *testing.T) {
	upstream := http.NewServeMux()
	upstream.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"app-token"}`))
	})
	upstream.HandleFunc("/helix/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"foo", "bar"}, r.URL.Query()["login"])
		_, _ = w.Write([]byte(`{"data":[{"id":"1","login":"foo"},{"id":"2","login":"bar"}]}`))
	})
	twitch := httptest.NewServer(upstream)
	defer twitch.Close()

	logger, _ := test.NewNullLogger()
	client := twitchClient.NewTwitchClient(
		twitchClient.WithHosts(twitch.URL, twitch.URL),
		twitchClient.WithCredentials(func() twitchClient.Credentials {
			return twitchClient.Credentials{ClientID: "id", ClientSecret: "secret"}
		}),
		twitchClient.WithLogger(logger),
	)
	handler := NewDebugRouter(twitchHandler.NewTwitchHandler(twitchService.NewService(client)))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/twitch/users?login=foo,bar", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[{"id":"1","login":"foo"},{"id":"2","login":"bar"}],"error":""}`, rec.Body.String())
}

func TestDebugRouter_MethodNotAllowed(t *testing.T) {
	handler := NewDebugRouter(twitchHandler.NewTwitchHandler(twitchService.NewService(twitchClient.NewTwitchClient())))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/twitch/games?id=1", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDebugRouter_TransportErrorHidesClientSecret(t *testing.T) {
	twitch := httptest.NewServer(http.NotFoundHandler())
	twitch.Close()

	logger, _ := test.NewNullLogger()
	client := twitchClient.NewTwitchClient(
		twitchClient.WithHosts(twitch.URL, twitch.URL),
		twitchClient.WithCredentials(func() twitchClient.Credentials {
			return twitchClient.Credentials{ClientID: "id", ClientSecret: "TOPSECRET"}
		}),
		twitchClient.WithLogger(logger),
	)
	handler := NewDebugRouter(twitchHandler.NewTwitchHandler(twitchService.NewService(client)))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/twitch/users?login=foo", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "TOPSECRET")
	assert.Contains(t, rec.Body.String(), "client_secret=REDACTED")
}

func TestWebRouter_Head(t *testing.T) {
	rec := httptest.NewRecorder()

	NewWebRouter(prometheus.NewRegistry()).ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
