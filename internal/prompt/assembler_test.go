package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/knowledge"
)

func TestAssembleEmptyHistory(t *testing.T) {
	turns := Assemble(SystemPrompt(), nil, "hi")

	require.Len(t, turns, 3)
	require.Equal(t, RoleUser, turns[0].Role)
	require.Equal(t, RoleModel, turns[1].Role)
	require.Equal(t, RoleUser, turns[2].Role)
	require.Equal(t, "hi", turns[2].Text)
}

func TestAssembleTurnCount(t *testing.T) {
	history := []HistoryTurn{
		{Role: HistoryRoleUser, Text: "one"},
		{Role: HistoryRoleAssistant, Text: "two"},
		{Role: HistoryRoleUser, Text: "three"},
	}

	turns := Assemble(SystemPrompt(), history, "four")

	require.Len(t, turns, 2+len(history)+1)
}

func TestAssembleMapsAssistantToModelRole(t *testing.T) {
	history := []HistoryTurn{
		{Role: HistoryRoleUser, Text: "question"},
		{Role: HistoryRoleAssistant, Text: "answer"},
	}

	turns := Assemble(SystemPrompt(), history, "followup")

	require.Equal(t, RoleUser, turns[2].Role)
	require.Equal(t, "question", turns[2].Text)
	require.Equal(t, RoleModel, turns[3].Role)
	require.Equal(t, "answer", turns[3].Text)
}

func TestAssembleDoesNotTruncateHistory(t *testing.T) {
	history := make([]HistoryTurn, 50)
	for i := range history {
		history[i] = HistoryTurn{Role: HistoryRoleUser, Text: strings.Repeat("x", 10)}
	}

	turns := Assemble(SystemPrompt(), history, "latest")

	require.Len(t, turns, 53)
}

func TestSystemPromptCarriesFullKnowledgeBase(t *testing.T) {
	sys := SystemPrompt()

	require.Contains(t, sys, "SkeduleIt Support Assistant")
	require.Contains(t, sys, knowledge.FullCorpus())
}

func TestAssembleGroundingAckPrecedesHistory(t *testing.T) {
	turns := Assemble(SystemPrompt(), []HistoryTurn{{Role: HistoryRoleUser, Text: "hey"}}, "hi")

	require.Contains(t, turns[1].Text, "knowledge base")
	require.Equal(t, "hey", turns[2].Text)
}
