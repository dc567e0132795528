package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// pageRouter mounts h on the page routes so route patterns and the {id}
// parameter resolve the way they do in the API router.
func pageRouter(h http.HandlerFunc, mws ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(mws...)
	r.Get("/api/v1/pages", h)
	r.Get("/api/v1/pages/{id}", h)
	r.Post("/api/v1/pages/{id}/move", h)
	return r
}
