package routes

import (
	"context"
	"encoding/json"
	"net/http"

	"agrochat/agrochat/controllers"
	"agrochat/agrochat/utils/logging"
	"agrochat/agrochat/utils/types"

	"go.uber.org/zap"
)

func translateHandler(ctrl *controllers.TranslateController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TranslateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logging.AppLogger.Info("translate request",
			zap.String("source", req.SourceLanguage),
			zap.String("target", req.TargetLanguage))

		resp, err := ctrl.ProcessTranslation(context.WithoutCancel(r.Context()), req)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
