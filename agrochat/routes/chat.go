package routes

import (
	"context"
	"encoding/json"
	"net/http"

	"agrochat/agrochat/controllers"
	"agrochat/agrochat/utils/logging"
	"agrochat/agrochat/utils/types"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func chatHandler(ctrl *controllers.ChatController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logging.AppLogger.Info("chat request",
			zap.String("session_id", req.SessionID),
			zap.String("target_language", req.TargetLanguage))

		// A caller disconnect does not abort the in-flight provider call
		// or the follow-up writes; the turn always completes server-side.
		resp, err := ctrl.ProcessChat(context.WithoutCancel(r.Context()), req)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func historyHandler(ctrl *controllers.ChatController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "session_id")
		history, err := ctrl.GetHistory(r.Context(), sessionID)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, history)
	}
}
