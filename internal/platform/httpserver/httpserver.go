package httpserver

import (
	"net/http"
	"time"
)

// New builds the API server. Narrative payloads are small, so the read and
// write timeouts are tight; the longest requests are narrative diffs and
// version replays, which stay well under the write limit.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
