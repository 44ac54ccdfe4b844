package gen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"interviewcraft/internal/ai"
)

// Temperatures per task: lower for schema-constrained output, higher for
// free-form coaching.
const (
	chatTemperature     = 0.5
	insightsTemperature = 0.3
	resumeTemperature   = 0.2
)

const rawLogLimit = 500

// Service drives the provider -> extractor -> validator pipeline. All three
// operations are stateless: context arrives as arguments, the result (or a
// typed failure) goes back to the caller, and the store is never touched.
type Service struct {
	provider ai.Provider
}

func NewService(provider ai.Provider) *Service {
	return &Service{provider: provider}
}

// ReplyToChat produces a free-text coach reply from the job context, the full
// prior transcript, and the new user turn. No schema validation.
func (s *Service) ReplyToChat(ctx context.Context, jobTitle, jobDescription string, history []ai.Message, content string) (string, error) {
	msgs := make([]ai.Message, 0, len(history)+1)
	msgs = append(msgs, history...)
	msgs = append(msgs, ai.Message{Role: "user", Content: content})

	raw, err := s.provider.Complete(ctx, ai.Request{
		System:      chatSystemPrompt(jobTitle, jobDescription),
		Messages:    msgs,
		Temperature: chatTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		return "", ErrEmptyGeneration
	}
	return reply, nil
}

func (s *Service) JobInsights(ctx context.Context, jobTitle, jobDescription string) (*JobInsights, error) {
	raw, err := s.completeJSON(ctx, insightsSystemPrompt, insightsUserPrompt(jobTitle, jobDescription), insightsTemperature)
	if err != nil {
		return nil, err
	}

	out := &JobInsights{}
	if err := s.decodeLogged(raw, out, "job_insights"); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ResumeFeedback(ctx context.Context, jobTitle, jobDescription, resumeText string) (*ResumeFeedback, error) {
	raw, err := s.completeJSON(ctx, resumeSystemPrompt, resumeUserPrompt(jobTitle, jobDescription, resumeText), resumeTemperature)
	if err != nil {
		return nil, err
	}

	out := &ResumeFeedback{}
	if err := s.decodeLogged(raw, out, "resume_feedback"); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) completeJSON(ctx context.Context, system, user string, temperature float64) (string, error) {
	raw, err := s.provider.Complete(ctx, ai.Request{
		System:      system,
		Messages:    []ai.Message{{Role: "user", Content: user}},
		Temperature: temperature,
		JSONOnly:    true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyGeneration
	}
	return raw, nil
}

// decodeLogged runs extraction + validation and logs the offending raw
// response (truncated) when the model output cannot be used.
func (s *Service) decodeLogged(raw string, dst any, task string) error {
	value, err := ExtractJSON(raw)
	if err != nil {
		log.Printf("gen: task=%s extract failed err=%v raw=%q", task, err, truncate(raw, rawLogLimit))
		return err
	}
	if err := decodeArtifact(value, dst); err != nil {
		var se *SchemaError
		if errors.As(err, &se) {
			log.Printf("gen: task=%s schema violation path=%s expect=%s raw=%q", task, se.Path, se.Expect, truncate(raw, rawLogLimit))
		}
		return err
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
