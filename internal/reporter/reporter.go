package reporter

import (
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"twitch_helix_client/internal/metrics"
)

const redacted = "REDACTED"

var sensitiveParams = []string{"client_secret", "refresh_token", "code"}

// ErrorReporter receives upstream failures for out-of-band tracking.
type ErrorReporter interface {
	ReportRequest(err error, req *http.Request)
}

type Nop struct{}

func (Nop) ReportRequest(error, *http.Request) {}

// LogReporter writes reported errors to logrus and counts them.
type LogReporter struct {
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

func NewLogReporter(log logrus.FieldLogger, m *metrics.Metrics) *LogReporter {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &LogReporter{
		log:     log,
		metrics: m,
	}
}

func (lr *LogReporter) ReportRequest(err error, req *http.Request) {
	if err == nil {
		return
	}

	fields := logrus.Fields{"error": err.Error()}
	if req != nil {
		fields["method"] = req.Method
		fields["url"] = RedactURL(req.URL)
	}

	lr.log.WithFields(fields).Error("twitch request failed")
	lr.metrics.IncReportedErrors()
}

// RedactURL renders u with credential query parameters masked.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	masked := *u
	query := masked.Query()
	for _, key := range sensitiveParams {
		if query.Has(key) {
			query.Set(key, redacted)
		}
	}
	masked.RawQuery = query.Encode()

	return masked.String()
}
