package chat

import (
	"context"

	"interviewcraft/internal/ai"
	"interviewcraft/internal/common"
)

// Coach produces the assistant reply for a chat turn. Implemented by the
// generation orchestrator; stubbed in tests.
type Coach interface {
	ReplyToChat(ctx context.Context, jobTitle, jobDescription string, history []ai.Message, content string) (string, error)
}

type Service struct {
	repo  *Repo
	coach Coach
}

func NewService(repo *Repo, coach Coach) *Service {
	return &Service{repo: repo, coach: coach}
}

func (s *Service) CreateChat(ctx context.Context, userID uint64, jobTitle, jobDescription string) (*Chat, error) {
	id, err := common.NewULID()
	if err != nil {
		return nil, err
	}

	c := &Chat{
		ID:             id,
		UserID:         userID,
		JobTitle:       jobTitle,
		JobDescription: jobDescription,
		Messages:       []Message{},
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListChats(ctx context.Context, userID uint64) ([]Summary, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) GetChat(ctx context.Context, userID uint64, chatID string) (*Chat, error) {
	return s.repo.GetByID(ctx, userID, chatID)
}

// SendMessage drives one turn end to end: fetch the owned chat, generate a
// reply over the full prior transcript, then append both messages in one
// transaction. A generation failure appends nothing.
func (s *Service) SendMessage(ctx context.Context, userID uint64, chatID, content string) (*Chat, error) {
	c, err := s.repo.GetByID(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	history := make([]ai.Message, 0, len(c.Messages))
	for _, m := range c.Messages {
		history = append(history, ai.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := s.coach.ReplyToChat(ctx, c.JobTitle, c.JobDescription, history, content)
	if err != nil {
		return nil, err
	}

	return s.repo.AppendTurn(ctx, userID, chatID, content, reply)
}
