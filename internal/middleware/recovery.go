package middleware

import (
	"net/http"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"
)

// PanicRecovery answers 500 to a request whose handler panicked and counts
// it. http.ErrAbortHandler is passed on, net/http uses it to drop the
// connection on purpose.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				log.WithFields(log.Fields{
					"route":  routeName(req),
					"method": req.Method,
				}).Errorf("panic serving %s: %v\n%s", req.URL.Path, recovered, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
