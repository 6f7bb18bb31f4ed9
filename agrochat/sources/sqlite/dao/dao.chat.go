package dao

import (
	"agrochat/agrochat/sources/sqlite/models"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatDAO exposes the three operations the orchestrators need. All writes
// commit synchronously before returning. There are no update or delete
// operations: sessions and messages are immutable once stored. Ordering
// across concurrent appends to the same session is whatever the store's
// commit order yields.
type ChatDAO struct {
	DB *gorm.DB
}

func NewChatDAO(db *gorm.DB) *ChatDAO {
	return &ChatDAO{DB: db}
}

func (dao *ChatDAO) CreateSessionID() string {
	return uuid.New().String()
}

// GetOrCreateSession upserts a session row. First write wins on language:
// an existing session keeps whatever language it was created with.
func (dao *ChatDAO) GetOrCreateSession(ctx context.Context, sessionID, language string) (*models.ChatSession, error) {
	var session models.ChatSession
	err := dao.DB.WithContext(ctx).
		Where(models.ChatSession{SessionID: sessionID}).
		Attrs(models.ChatSession{Language: language}).
		FirstOrCreate(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (dao *ChatDAO) AppendMessage(ctx context.Context, sessionID, role, content string) (*models.ChatMessage, error) {
	msg := models.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	}
	if err := dao.DB.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (dao *ChatDAO) ListMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := dao.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (dao *ChatDAO) CountMessages(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Model(&models.ChatMessage{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}
