package httpadapter

import (
	"net/http"

	"github.com/go-chi/cors"
)

// corsHandler allows browser calls from the configured origins. An empty
// list allows none; "*" allows any.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         300,
	}
	if len(origins) == 0 {
		// the library treats an empty list as allow-all
		opts.AllowOriginFunc = func(*http.Request, string) bool { return false }
	}
	return cors.Handler(opts)
}
