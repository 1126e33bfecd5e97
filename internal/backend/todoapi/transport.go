package todoapi

import (
	"net/http"

	"github.com/motemen/go-loghttp"
	"go.uber.org/zap"
)

// newLoggingTransport logs each round trip at debug level.
func newLoggingTransport(base http.RoundTripper, logger *zap.Logger) http.RoundTripper {
	return &loghttp.Transport{
		Transport: base,
		LogRequest: func(req *http.Request) {
			logger.Debug("http request",
				zap.String("method", req.Method),
				zap.String("url", req.URL.String()),
				zap.String("request_id", req.Header.Get(RequestIDHeader)),
			)
		},
		LogResponse: func(resp *http.Response) {
			fields := []zap.Field{
				zap.Int("status", resp.StatusCode),
			}
			if resp.Request != nil {
				fields = append(fields,
					zap.String("url", resp.Request.URL.String()),
					zap.String("request_id", resp.Request.Header.Get(RequestIDHeader)),
				)
			}
			logger.Debug("http response", fields...)
		},
	}
}
