package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// DrainAndCloseRequest reads up to maxDrainBytes of whatever body the handler
// left unread, so keep-alive connections can be reused, and closes it. A body
// with more left over is only closed.
func DrainAndCloseRequest(maxDrainBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)

			if req.Body == nil || req.Body == http.NoBody {
				return
			}
			drained, err := io.CopyN(io.Discard, req.Body, maxDrainBytes)
			if err == nil && drained == maxDrainBytes {
				log.Tracef("%s %s: body left over after %d bytes drained", req.Method, req.URL.Path, drained)
			}
			if err := req.Body.Close(); err != nil {
				log.Tracef("%s %s: close body: %s", req.Method, req.URL.Path, err)
			}
		})
	}
}
