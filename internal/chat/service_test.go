package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/apperrors"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/dispatch"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/llm"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/logging"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/prompt"
)

func newTestService(mock *llm.MockClient) *Service {
	dispatcher := dispatch.New(mock, dispatch.Config{MaxRetries: 0, BaseDelay: time.Millisecond}, logging.Nop())
	return NewService(dispatcher, logging.Nop())
}

func TestChatReturnsAnswerAndMatchedSections(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResult{Answer: "Open the app and pick a slot."})
	service := newTestService(mock)

	result, err := service.Chat(context.Background(), nil, "How do I book an appointment?")

	require.NoError(t, err)
	require.Equal(t, "Open the app and pick a slot.", result.Answer)
	require.Equal(t, []string{"4. Customer FAQ"}, result.MatchedSections)
}

func TestChatSendsAssembledTurnSequence(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResult{Answer: "ok"})
	service := newTestService(mock)

	history := []prompt.HistoryTurn{
		{Role: prompt.HistoryRoleUser, Text: "hello"},
		{Role: prompt.HistoryRoleAssistant, Text: "hi there"},
	}

	_, err := service.Chat(context.Background(), history, "next question")
	require.NoError(t, err)

	turns := mock.CallTurns(0)
	require.Len(t, turns, 2+len(history)+1)
	require.Equal(t, prompt.RoleUser, turns[0].Role)
	require.Equal(t, prompt.RoleModel, turns[3].Role)
	require.Equal(t, "next question", turns[len(turns)-1].Text)
}

func TestChatPropagatesClassifiedFailure(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResult{Err: errors.New("prompt blocked by safety filters")})
	service := newTestService(mock)

	_, err := service.Chat(context.Background(), nil, "something naughty")

	require.Error(t, err)
	var providerErr *apperrors.ProviderError
	require.ErrorAs(t, err, &providerErr)
	require.Equal(t, apperrors.ClassContentBlocked, providerErr.Class)
}

func TestChatNeverFabricatesAnswerOnFailure(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResult{Err: errors.New("boom")})
	service := newTestService(mock)

	result, err := service.Chat(context.Background(), nil, "hello")

	require.Error(t, err)
	require.Empty(t, result.Answer)
	require.Empty(t, result.MatchedSections)
}

func TestSelectContextFallsBackToFullCatalog(t *testing.T) {
	service := newTestService(llm.NewMockClient())

	match := service.SelectContext("completely unrelated gibberish")

	require.Len(t, match.Titles, 7)
}
