package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"agrochat/agrochat/config"
	"agrochat/agrochat/controllers"
	"agrochat/agrochat/middlewares"
	"agrochat/agrochat/services/languages"
	"agrochat/agrochat/services/sarvam"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

const (
	rateLimit       = 10
	rateLimitWindow = time.Minute
)

// APIRoutes assembles the /api/v1 surface. Everything behind it requires
// the shared X-API-Key; the provider-facing POST endpoints additionally
// sit behind a 10 req/min per-IP admission gate.
func APIRoutes(chatCtrl *controllers.ChatController, translateCtrl *controllers.TranslateController, transcribeCtrl *controllers.TranscribeController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.APIKeyMiddleware(cfg))

	r.Group(func(gr chi.Router) {
		gr.Use(httprate.Limit(
			rateLimit, rateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			}),
		))
		gr.Post("/chat", chatHandler(chatCtrl))
		gr.Post("/translate", translateHandler(translateCtrl))
		gr.Post("/transcribe", transcribeHandler(transcribeCtrl))
	})

	r.Get("/history/{session_id}", historyHandler(chatCtrl))
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFailure maps the error taxonomy to HTTP statuses: bad language
// names are the caller's fault, provider failures are upstream failures,
// everything else (including the store) is a server error.
func writeFailure(w http.ResponseWriter, err error) {
	var unsupported *languages.UnsupportedLanguageError
	switch {
	case errors.As(err, &unsupported):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, sarvam.ErrProviderUnavailable), errors.Is(err, sarvam.ErrProviderBadResponse):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, controllers.ErrTranscriptionFailed):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
