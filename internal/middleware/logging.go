package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest traces each served request with its route, status and duration.
// It costs nothing unless the trace level is on.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !log.IsLevelEnabled(log.TraceLevel) {
				next.ServeHTTP(w, req)
				return
			}

			begin := time.Now()
			resp := &responseWriter{w, http.StatusOK}
			next.ServeHTTP(resp, req)

			log.WithFields(log.Fields{
				"method": req.Method,
				"route":  routeName(req),
				"path":   req.URL.Path,
				"status": resp.statusCode,
				"took":   time.Since(begin).String(),
				"ua":     req.Header.Get("User-Agent"),
			}).Trace("request served")
		})
	}
}
