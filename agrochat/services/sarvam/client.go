package sarvam

import (
	"agrochat/agrochat/config"
	"agrochat/agrochat/utils/logging"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var (
	// ErrProviderUnavailable covers transport failures and non-2xx
	// statuses from the provider. Calls are never retried.
	ErrProviderUnavailable = errors.New("error communicating with AI provider")
	// ErrProviderBadResponse means the provider answered 2xx but the
	// payload was missing the expected fields.
	ErrProviderBadResponse = errors.New("invalid response from AI provider")
)

const (
	ChatModel     = "sarvam-m"
	SpeechModel   = "saarika:v2.5"
	SpeakerGender = "Male"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to the Sarvam API. The chat-completion endpoint uses
// bearer auth, translate and speech-to-text use the api-subscription-key
// header, matching the two auth schemes the provider exposes.
type Client struct {
	http    *resty.Client
	apiKey  string
	chatURL string
	baseURL string
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		http:    resty.New().SetTimeout(60 * time.Second),
		apiKey:  cfg.SarvamAPIKey,
		chatURL: cfg.SarvamChatURL,
		baseURL: cfg.SarvamBaseURL,
	}
}

func (c *Client) ChatCompletion(ctx context.Context, messages []Message) (string, error) {
	defer logging.LogDuration(ctx, "sarvam_chat_completion")()

	payload := map[string]interface{}{
		"model":    ChatModel,
		"messages": messages,
	}
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(c.chatURL)
	if err != nil {
		logging.ErrorLogger.Error("sarvam chat request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if res.IsError() {
		logging.ErrorLogger.Error("sarvam chat bad status",
			zap.Int("status", res.StatusCode()), zap.String("body", res.String()))
		return "", fmt.Errorf("%w: status %d", ErrProviderUnavailable, res.StatusCode())
	}

	var parsed struct {
		Choices []struct {
			Message Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(res.Body(), &parsed); err != nil {
		logging.ErrorLogger.Error("sarvam chat unexpected response", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrProviderBadResponse, err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: no choices returned", ErrProviderBadResponse)
	}
	return parsed.Choices[0].Message.Content, nil
}

func (c *Client) Translate(ctx context.Context, text, sourceCode, targetCode, gender string) (string, error) {
	defer logging.LogDuration(ctx, "sarvam_translate")()

	payload := map[string]interface{}{
		"input":                text,
		"source_language_code": sourceCode,
		"target_language_code": targetCode,
		"speaker_gender":       gender,
	}
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("api-subscription-key", c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(c.baseURL + "/translate")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if res.IsError() {
		return "", fmt.Errorf("%w: status %d", ErrProviderUnavailable, res.StatusCode())
	}

	var parsed struct {
		TranslatedText string `json:"translated_text"`
	}
	if err := json.Unmarshal(res.Body(), &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderBadResponse, err)
	}
	if parsed.TranslatedText == "" {
		return "", fmt.Errorf("%w: missing translated_text", ErrProviderBadResponse)
	}
	return parsed.TranslatedText, nil
}

func (c *Client) SpeechToText(ctx context.Context, audio []byte, filename, model, languageCode string) (string, error) {
	defer logging.LogDuration(ctx, "sarvam_speech_to_text")()

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("api-subscription-key", c.apiKey).
		SetFileReader("file", filename, bytes.NewReader(audio)).
		SetFormData(map[string]string{
			"model":         model,
			"language_code": languageCode,
		}).
		Post(c.baseURL + "/speech-to-text")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if res.IsError() {
		return "", fmt.Errorf("%w: status %d", ErrProviderUnavailable, res.StatusCode())
	}

	var parsed struct {
		Transcript string `json:"transcript"`
	}
	if err := json.Unmarshal(res.Body(), &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderBadResponse, err)
	}
	if parsed.Transcript == "" {
		return "", fmt.Errorf("%w: missing transcript", ErrProviderBadResponse)
	}
	return parsed.Transcript, nil
}
