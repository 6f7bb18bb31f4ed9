package controllers

import (
	"agrochat/agrochat/services/languages"
	"agrochat/agrochat/services/sarvam"
	"agrochat/agrochat/utils/logging"
	"agrochat/agrochat/utils/types"
	"context"

	"go.uber.org/zap"
)

type TranslateController struct {
	client *sarvam.Client
}

func NewTranslateController(client *sarvam.Client) *TranslateController {
	return &TranslateController{client: client}
}

func (c *TranslateController) ProcessTranslation(ctx context.Context, req types.TranslateRequest) (types.TranslateResponse, error) {
	sourceCode, err := languages.Resolve(req.SourceLanguage)
	if err != nil {
		return types.TranslateResponse{}, err
	}
	targetCode, err := languages.Resolve(req.TargetLanguage)
	if err != nil {
		return types.TranslateResponse{}, err
	}
	return types.TranslateResponse{
		TranslatedText: c.TranslateText(ctx, req.Text, sourceCode, targetCode),
	}, nil
}

// TranslateText never fails: any provider error degrades to returning the
// input text unchanged. The same policy applies standalone and when the
// chat flow translates a reply.
func (c *TranslateController) TranslateText(ctx context.Context, text, sourceCode, targetCode string) string {
	translated, err := c.client.Translate(ctx, text, sourceCode, targetCode, sarvam.SpeakerGender)
	if err != nil {
		logging.ErrorLogger.Error("translation failed, returning original text",
			zap.String("source", sourceCode), zap.String("target", targetCode), zap.Error(err))
		return text
	}
	return translated
}
