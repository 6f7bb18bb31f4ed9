package controllers

import (
	"agrochat/agrochat/services/languages"
	"agrochat/agrochat/services/sarvam"
	"agrochat/agrochat/sources/storage"
	"agrochat/agrochat/utils/logging"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrTranscriptionFailed wraps any provider error during transcription.
// There is no sensible default transcript, so unlike translation this
// never degrades silently.
var ErrTranscriptionFailed = errors.New("voice recognition failed")

type TranscribeController struct {
	client *sarvam.Client
	// nil when audio archival is not configured
	storage *storage.MinIOClient
}

func NewTranscribeController(client *sarvam.Client, store *storage.MinIOClient) *TranscribeController {
	return &TranscribeController{client: client, storage: store}
}

func (c *TranscribeController) Transcribe(ctx context.Context, audio []byte, filename, languageName string) (string, error) {
	defer logging.LogDuration(ctx, "transcribe")()

	languageCode, err := languages.Resolve(languageName)
	if err != nil {
		return "", err
	}

	if c.storage != nil {
		if key, err := c.storage.UploadAudio(ctx, filename, audio); err != nil {
			logging.ErrorLogger.Error("audio archival failed", zap.Error(err))
		} else {
			logging.AppLogger.Info("audio archived", zap.String("key", key))
		}
	}

	transcript, err := c.client.SpeechToText(ctx, audio, filename, sarvam.SpeechModel, languageCode)
	if err != nil {
		logging.ErrorLogger.Error("transcription failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}
	return transcript, nil
}
