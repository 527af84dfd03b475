package prompt

import (
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/knowledge"
)

// Provider turn roles. The provider API calls the assistant side "model".
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// History turn roles as supplied by the boundary layer.
const (
	HistoryRoleUser      = "user"
	HistoryRoleAssistant = "assistant"
)

// Turn is one entry in the ordered sequence sent to the provider.
type Turn struct {
	Role string
	Text string
}

// HistoryTurn is one caller-supplied conversation turn. History is resent in
// full on every request; the server never persists it.
type HistoryTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// groundingAck is the synthetic model turn that locks the conversation onto
// the knowledge base before any real history is replayed.
const groundingAck = "Got it. I'm the SkeduleIt Support Assistant. " +
	"I'll answer only based on the knowledge base provided. " +
	"How can I help?"

// SystemPrompt builds the instruction block carried by the first user turn:
// assistant persona, answering rules, and the full knowledge base.
func SystemPrompt() string {
	return "You are the official SkeduleIt Support Assistant.\n" +
		"SkeduleIt is a mobile scheduling & payment app for service providers\n" +
		"and customers in Trinidad & Tobago.\n" +
		"\n" +
		"Rules:\n" +
		"  • Answer ONLY based on the knowledge base below.\n" +
		"  • If the question falls outside the knowledge base, say:\n" +
		"    \"I'm sorry, I don't have information on that. Please contact\n" +
		"     our support team for further assistance.\"\n" +
		"  • Be friendly, concise, and helpful.\n" +
		"  • Do NOT hallucinate features, policies, or prices.\n" +
		"  • Respond in English.\n" +
		"\n" +
		"════════════════════════════════════════════════\n" +
		" SKEDULEIT KNOWLEDGE BASE\n" +
		"════════════════════════════════════════════════\n" +
		knowledge.FullCorpus() +
		"\n════════════════════════════════════════════════"
}

// Assemble builds the ordered turn sequence for one provider call:
//
//	[0]   user  → system prompt + knowledge base
//	[1]   model → grounding acknowledgment
//	[2..] prior turns from the caller, assistant mapped to the model role
//	[n]   user  → the current message
//
// History is neither truncated nor deduplicated here; length limits are
// enforced at the boundary.
func Assemble(systemPrompt string, history []HistoryTurn, currentMessage string) []Turn {
	turns := make([]Turn, 0, len(history)+3)

	turns = append(turns,
		Turn{Role: RoleUser, Text: systemPrompt},
		Turn{Role: RoleModel, Text: groundingAck},
	)

	for _, turn := range history {
		role := RoleUser
		if turn.Role == HistoryRoleAssistant {
			role = RoleModel
		}
		turns = append(turns, Turn{Role: role, Text: turn.Text})
	}

	return append(turns, Turn{Role: RoleUser, Text: currentMessage})
}
