package routes

import (
	"context"
	"io"
	"net/http"

	"agrochat/agrochat/controllers"
	"agrochat/agrochat/utils/logging"
	"agrochat/agrochat/utils/types"

	"go.uber.org/zap"
)

// uploads are capped at 25 MiB, plenty for a voice clip
const maxAudioUpload = 25 << 20

func transcribeHandler(ctrl *controllers.TranscribeController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxAudioUpload)
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing audio file")
			return
		}
		defer file.Close()

		audio, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		languageName := r.FormValue("language_name")
		if languageName == "" {
			languageName = "English"
		}
		filename := header.Filename
		if filename == "" {
			filename = "audio.wav"
		}
		logging.AppLogger.Info("transcription request",
			zap.String("language", languageName),
			zap.Int("bytes", len(audio)))

		transcript, err := ctrl.Transcribe(context.WithoutCancel(r.Context()), audio, filename, languageName)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, types.TranscribeResponse{Transcript: transcript})
	}
}
