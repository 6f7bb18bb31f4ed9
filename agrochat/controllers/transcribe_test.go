package controllers

import (
	"agrochat/agrochat/config"
	"agrochat/agrochat/services/languages"
	"agrochat/agrochat/services/sarvam"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestTranscribeController(t *testing.T, handler http.HandlerFunc) *TranscribeController {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/speech-to-text", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	client := sarvam.NewClient(config.Config{SarvamAPIKey: "test-key", SarvamBaseURL: srv.URL})
	return NewTranscribeController(client, nil)
}

func TestTranscribe(t *testing.T) {
	ctrl := newTestTranscribeController(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		if got := r.FormValue("language_code"); got != "pa-IN" {
			t.Errorf("expected language_code pa-IN, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transcript":"sat sri akal"}`))
	})

	transcript, err := ctrl.Transcribe(context.Background(), []byte("RIFF...."), "clip.wav", "Punjabi")
	if err != nil {
		t.Fatalf("Transcribe returned error: %v", err)
	}
	if transcript != "sat sri akal" {
		t.Errorf("unexpected transcript %q", transcript)
	}
}

func TestTranscribeProviderFailureIsFatal(t *testing.T) {
	ctrl := newTestTranscribeController(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "stt down", http.StatusServiceUnavailable)
	})

	_, err := ctrl.Transcribe(context.Background(), []byte("RIFF"), "clip.wav", "English")
	if !errors.Is(err, ErrTranscriptionFailed) {
		t.Fatalf("expected ErrTranscriptionFailed, got %v", err)
	}
}

func TestTranscribeUnsupportedLanguage(t *testing.T) {
	ctrl := newTestTranscribeController(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called for a bad language")
	})

	_, err := ctrl.Transcribe(context.Background(), []byte("RIFF"), "clip.wav", "Esperanto")
	var unsupported *languages.UnsupportedLanguageError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedLanguageError, got %v", err)
	}
}
