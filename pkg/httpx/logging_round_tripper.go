package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/xid"

	"rtanksbot/pkg/contextx"
	"rtanksbot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// LoggingRoundTripper implements http.RoundTripper and executes HTTP
// requests with logging. Scraped pages are large, so callers normally
// cap the logged body with WithLogFieldMaxLen.
type LoggingRoundTripper struct {
	next           http.RoundTripper
	logFieldMaxLen int
}

// NewLoggingRoundTripper returns a new logging RoundTripper instance.
func NewLoggingRoundTripper(next http.RoundTripper, opts ...Option) LoggingRoundTripper {
	rt := LoggingRoundTripper{
		next:           next,
		logFieldMaxLen: 0,
	}

	for _, opt := range opts {
		opt(&rt)
	}

	return rt
}

// RoundTrip implements http.RoundTripper interface.
func (rt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	requestID := xid.New().String()

	log := logger(ctx).With(slog.String(logx.FieldRequestID, requestID))
	if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
		log = log.With(logx.Stringer(logx.FieldTraceID, traceID))
	}

	reqBytes, err := httputil.DumpRequestOut(req, false)
	if err != nil {
		log.Error("httputil.DumpRequestOut", logx.Error(err))
	}

	log.Debug(
		logx.FieldHTTPRequest,
		slog.String(logx.FieldRequestBody, string(rt.truncate(reqBytes))),
	)

	start := time.Now()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip %w", err)
	}

	respBytes, err := httputil.DumpResponse(resp, true)
	if err != nil {
		log.Error("httputil.DumpResponse", logx.Error(err))
	}

	log.Debug(
		logx.FieldHTTPResponse,
		slog.String(logx.FieldResponseBody, string(rt.truncate(respBytes))),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return resp, nil
}

func (rt LoggingRoundTripper) truncate(b []byte) []byte {
	if rt.logFieldMaxLen != 0 && len(b) > rt.logFieldMaxLen {
		return b[:rt.logFieldMaxLen]
	}
	return b
}
