package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/logger"
)

// LogRequest logs the request's method, requested URL, originating IP address,
// response status and duration using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following keys:
// - password
// - jwt
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			h.ServeHTTP(sr, r)

			q := r.URL.Query()
			for _, k := range []string{"password", "jwt"} {
				cairn.Mask(q, k)
			}

			scrubbed := r.Clone(r.Context())
			scrubbed.URL.RawQuery = q.Encode()

			uri := scrubbed.URL.RequestURI()

			strs := []string{r.Method, uri}
			if ip, ok := r.Context().Value(cairn.IpAddrKey).(string); ok {
				strs = append([]string{ip}, strs...)
			}

			ls.Info(strings.Join(strs, " "), &logger.LogContext{
				Request: scrubbed,
				Data: map[string]any{
					"status":   sr.status,
					"duration": time.Since(start).String(),
				},
			})
		})
	}
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}
