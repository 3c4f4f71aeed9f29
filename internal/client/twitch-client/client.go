package twitch_client

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"twitch_helix_client/internal/metrics"
	"twitch_helix_client/internal/reporter"
)

const (
	twitchIDSchemeHost  string = "https://id.twitch.tv"
	twitchApiSchemeHost string = "https://api.twitch.tv"

	defaultTimeout = time.Second * 5
)

type Credentials struct {
	ClientID     string
	ClientSecret string
}

// CredentialsFunc is called on every authentication attempt.
type CredentialsFunc func() Credentials

func EnvCredentials() Credentials {
	return Credentials{
		ClientID:     os.Getenv("TWITCH_CLIENT_ID"),
		ClientSecret: os.Getenv("TWITCH_CLIENT_SECRET"),
	}
}

// TwitchClient is an app-token Helix client. The token is requested on first
// use and kept for the lifetime of the client. Callers own retry policy.
type TwitchClient struct {
	httpClient  *http.Client
	idHost      string
	apiHost     string
	credentials CredentialsFunc
	reporter    reporter.ErrorReporter
	metrics     *metrics.Metrics
	log         logrus.FieldLogger

	mu          sync.RWMutex
	accessToken string
	tokenFlight singleflight.Group
}

type Option func(*TwitchClient)

func WithHTTPClient(client *http.Client) Option {
	return func(twc *TwitchClient) {
		twc.httpClient = client
	}
}

// WithHosts overrides the id.twitch.tv and api.twitch.tv scheme+host pairs.
// Empty values keep the defaults.
func WithHosts(idHost, apiHost string) Option {
	return func(twc *TwitchClient) {
		if idHost != "" {
			twc.idHost = idHost
		}
		if apiHost != "" {
			twc.apiHost = apiHost
		}
	}
}

func WithCredentials(fn CredentialsFunc) Option {
	return func(twc *TwitchClient) {
		twc.credentials = fn
	}
}

func WithReporter(r reporter.ErrorReporter) Option {
	return func(twc *TwitchClient) {
		twc.reporter = r
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(twc *TwitchClient) {
		twc.metrics = m
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(twc *TwitchClient) {
		twc.log = log
	}
}

func NewTwitchClient(opts ...Option) *TwitchClient {
	twc := &TwitchClient{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		idHost:      twitchIDSchemeHost,
		apiHost:     twitchApiSchemeHost,
		credentials: EnvCredentials,
		reporter:    reporter.Nop{},
		log:         logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(twc)
	}

	return twc
}

// HasToken reports whether an access token is currently held.
func (twc *TwitchClient) HasToken() bool {
	return twc.currentToken() != ""
}

func (twc *TwitchClient) currentToken() string {
	twc.mu.RLock()
	defer twc.mu.RUnlock()

	return twc.accessToken
}

func (twc *TwitchClient) setToken(token string) {
	twc.mu.Lock()
	defer twc.mu.Unlock()

	twc.accessToken = token
}
