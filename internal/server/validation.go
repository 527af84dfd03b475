package server

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/prompt"
)

const (
	maxMessageLength     = 1000
	maxHistoryLength     = 50
	maxHistoryTextLength = 2000
)

// validateChatRequest enforces the inbound contract: message 1-1000 chars
// after trimming, at most 50 history turns, each with a known role and text
// of at most 2000 chars. The trimmed message is written back to req.
func validateChatRequest(req *chatRequest) error {
	if utf8.RuneCountInString(req.Message) > maxMessageLength {
		return fmt.Errorf("message cannot exceed %d characters", maxMessageLength)
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return errors.New("message cannot be empty")
	}

	if len(req.History) > maxHistoryLength {
		return fmt.Errorf("history cannot exceed %d messages", maxHistoryLength)
	}

	for i, turn := range req.History {
		if turn.Role != prompt.HistoryRoleUser && turn.Role != prompt.HistoryRoleAssistant {
			return fmt.Errorf("history[%d]: role must be \"user\" or \"assistant\"", i)
		}
		if utf8.RuneCountInString(turn.Text) > maxHistoryTextLength {
			return fmt.Errorf("history[%d]: text cannot exceed %d characters", i, maxHistoryTextLength)
		}
	}

	return nil
}
