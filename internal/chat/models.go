package chat

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Chat is one job-prep thread. JobDescription is immutable after creation;
// UpdatedAt advances whenever a turn is appended.
type Chat struct {
	ID             string    `gorm:"primaryKey;size:26" json:"id"`
	UserID         uint64    `gorm:"index;not null" json:"-"`
	JobTitle       string    `gorm:"type:varchar(150);not null" json:"jobTitle"`
	JobDescription string    `gorm:"type:text;not null" json:"jobDescription"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Messages       []Message `gorm:"foreignKey:ChatID" json:"messages"`
}

func (Chat) TableName() string { return "chats" }

// Message rows are append-only and never deleted.
type Message struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ChatID    string    `gorm:"size:26;index;not null" json:"-"`
	Role      string    `gorm:"type:varchar(16);not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Message) TableName() string { return "chat_messages" }

// Summary is the list-view projection, ordered by update recency.
type Summary struct {
	ID        string    `json:"id"`
	JobTitle  string    `json:"jobTitle"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
