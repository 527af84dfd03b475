package chat

import (
	"context"
	"errors"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/apperrors"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/dispatch"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/knowledge"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/logging"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/metrics"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/prompt"
)

// Result is the outcome of one successful chat call.
type Result struct {
	Answer          string
	MatchedSections []string
}

// Service is the core entry point for the boundary layer: context selection
// and stateless chat. It owns no conversation state; callers resend the full
// history each turn.
type Service struct {
	dispatcher *dispatch.Dispatcher
	logger     logging.Logger
}

// NewService creates the chat service around an injected dispatcher.
func NewService(dispatcher *dispatch.Dispatcher, logger logging.Logger) *Service {
	return &Service{
		dispatcher: dispatcher,
		logger:     logging.OrNop(logger),
	}
}

// SelectContext exposes the keyword selector to the boundary layer.
func (s *Service) SelectContext(query string) knowledge.Match {
	return knowledge.Select(query)
}

// Chat grounds the current message, assembles the turn sequence, and runs it
// through the serialized dispatcher. The returned error is either a
// classified *apperrors.ProviderError or the caller's own context error when
// it stopped waiting (the job still completes in the background).
func (s *Service) Chat(ctx context.Context, history []prompt.HistoryTurn, message string) (Result, error) {
	match := knowledge.Select(message)

	turns := prompt.Assemble(prompt.SystemPrompt(), history, message)
	job := s.dispatcher.Submit(turns)

	answer, err := job.Wait(ctx)
	if err != nil {
		var providerErr *apperrors.ProviderError
		if errors.As(err, &providerErr) {
			metrics.ChatRequests.WithLabelValues(string(providerErr.Class)).Inc()
		} else {
			metrics.ChatRequests.WithLabelValues("abandoned").Inc()
		}
		return Result{}, err
	}

	metrics.ChatRequests.WithLabelValues("success").Inc()
	return Result{Answer: answer, MatchedSections: match.Titles}, nil
}
