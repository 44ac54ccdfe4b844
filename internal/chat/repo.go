package chat

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repo owns chat and message persistence. Every read and write is filtered by
// the owning user id at the query level; a chat owned by someone else is
// indistinguishable from a missing one (gorm.ErrRecordNotFound).
type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, c *Chat) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// ListByUser returns the user's chat summaries, most recently updated first.
func (r *Repo) ListByUser(ctx context.Context, userID uint64) ([]Summary, error) {
	var out []Summary
	err := r.db.WithContext(ctx).
		Model(&Chat{}).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the chat with its messages ordered by creation time.
func (r *Repo) GetByID(ctx context.Context, userID uint64, chatID string) (*Chat, error) {
	var c Chat
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("id = ? AND user_id = ?", chatID, userID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// AppendTurn atomically appends one user message and one assistant message
// (in that order) and advances the chat's updated_at. Under failure neither
// message is visible; the transaction is the only thing serializing
// concurrent appends to the same chat.
func (r *Repo) AppendTurn(ctx context.Context, userID uint64, chatID, userContent, assistantContent string) (*Chat, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Chat
		if err := tx.Where("id = ? AND user_id = ?", chatID, userID).First(&c).Error; err != nil {
			return err
		}

		if err := tx.Create(&Message{ChatID: chatID, Role: RoleUser, Content: userContent}).Error; err != nil {
			return err
		}
		if err := tx.Create(&Message{ChatID: chatID, Role: RoleAssistant, Content: assistantContent}).Error; err != nil {
			return err
		}

		return tx.Model(&Chat{}).
			Where("id = ? AND user_id = ?", chatID, userID).
			Update("updated_at", time.Now().UTC()).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, userID, chatID)
}
