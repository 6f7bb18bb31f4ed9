package controllers

import (
	"agrochat/agrochat/config"
	"agrochat/agrochat/services/languages"
	"agrochat/agrochat/services/sarvam"
	"agrochat/agrochat/sources/sqlite/dao"
	"agrochat/agrochat/utils/logging"
	"agrochat/agrochat/utils/types"
	"context"

	"go.uber.org/zap"
)

type ChatController struct {
	chatDAO      *dao.ChatDAO
	client       *sarvam.Client
	translator   *TranslateController
	systemPrompt string
}

func NewChatController(chatDAO *dao.ChatDAO, client *sarvam.Client, translator *TranslateController, cfg config.Config) *ChatController {
	return &ChatController{
		chatDAO:      chatDAO,
		client:       client,
		translator:   translator,
		systemPrompt: cfg.SystemPrompt,
	}
}

// ProcessChat runs one chat turn: resolve the target language, upsert the
// session, persist the new user turn, call the provider with the scoping
// prompt injected, translate the reply when the session targets a
// non-pivot language, persist the reply, return it. Holds no state
// between calls beyond the store.
func (c *ChatController) ProcessChat(ctx context.Context, req types.ChatRequest) (types.ChatResponse, error) {
	defer logging.LogDuration(ctx, "process_chat")()

	targetCode, err := languages.Resolve(req.TargetLanguage)
	if err != nil {
		return types.ChatResponse{}, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = c.chatDAO.CreateSessionID()
	}
	if _, err := c.chatDAO.GetOrCreateSession(ctx, sessionID, req.TargetLanguage); err != nil {
		return types.ChatResponse{}, err
	}

	// The caller resends the full history each turn; the last entry is
	// trusted to be the new user turn. Divergence between resent and
	// stored history is not detected.
	if len(req.Messages) > 0 {
		last := req.Messages[len(req.Messages)-1]
		if _, err := c.chatDAO.AppendMessage(ctx, sessionID, last.Role, last.Content); err != nil {
			return types.ChatResponse{}, err
		}
	}

	// The scoping prompt always goes first; client-supplied system
	// messages are dropped so callers cannot override it.
	outbound := make([]sarvam.Message, 0, len(req.Messages)+1)
	outbound = append(outbound, sarvam.Message{Role: "system", Content: c.systemPrompt})
	for _, msg := range req.Messages {
		if msg.Role == "system" {
			continue
		}
		outbound = append(outbound, sarvam.Message{Role: msg.Role, Content: msg.Content})
	}

	reply, err := c.client.ChatCompletion(ctx, outbound)
	if err != nil {
		return types.ChatResponse{}, err
	}

	finalReply := reply
	if targetCode != languages.DefaultCode {
		finalReply = c.translator.TranslateText(ctx, reply, languages.DefaultCode, targetCode)
	}

	if _, err := c.chatDAO.AppendMessage(ctx, sessionID, "assistant", finalReply); err != nil {
		return types.ChatResponse{}, err
	}

	logging.AppLogger.Info("chat turn completed",
		zap.String("session_id", sessionID),
		zap.String("target_language", req.TargetLanguage))
	return types.ChatResponse{Reply: finalReply, SessionID: sessionID}, nil
}

// GetHistory returns the stored transcript in insertion order. An unknown
// session yields an empty slice, not an error.
func (c *ChatController) GetHistory(ctx context.Context, sessionID string) ([]types.Message, error) {
	messages, err := c.chatDAO.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	history := make([]types.Message, 0, len(messages))
	for _, m := range messages {
		history = append(history, types.Message{Role: m.Role, Content: m.Content})
	}
	return history, nil
}
