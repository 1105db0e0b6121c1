package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// LoggingMiddleware attaches log to every request and writes one access line
// when the response is done. Handlers read it back with hlog.FromRequest.
func LoggingMiddleware(log zerolog.Logger) func(http.Handler) http.Handler {
	withLogger := hlog.NewHandler(log)
	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		level := zerolog.InfoLevel
		if status >= 500 {
			level = zerolog.ErrorLevel
		} else if status >= 400 {
			level = zerolog.WarnLevel
		}
		hlog.FromRequest(r).WithLevel(level).
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("HTTP request completed")
	})
	remoteAddr := hlog.RemoteAddrHandler("client_ip")
	userAgent := hlog.UserAgentHandler("user_agent")

	return func(next http.Handler) http.Handler {
		return withLogger(remoteAddr(userAgent(access(next))))
	}
}
