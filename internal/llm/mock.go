package llm

import (
	"context"
	"sync"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/prompt"
)

// MockClient implements Client for testing. Each call pops the next scripted
// outcome; when the script is exhausted the final entry repeats.
type MockClient struct {
	mu      sync.Mutex
	script  []MockResult
	calls   [][]prompt.Turn
	onCall  func(call int)
	blockCh chan struct{}
}

// MockResult is one scripted provider outcome.
type MockResult struct {
	Answer string
	Err    error
}

// NewMockClient creates a mock provider that replays the given outcomes.
func NewMockClient(script ...MockResult) *MockClient {
	return &MockClient{script: script}
}

// Block makes every Generate call wait until Release is called.
func (m *MockClient) Block() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blockCh = make(chan struct{})
}

// Release unblocks all pending and future Generate calls.
func (m *MockClient) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blockCh != nil {
		close(m.blockCh)
		m.blockCh = nil
	}
}

// OnCall registers a hook invoked with the 1-based call number before each
// scripted outcome is returned.
func (m *MockClient) OnCall(fn func(call int)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onCall = fn
}

func (m *MockClient) Generate(ctx context.Context, turns []prompt.Turn) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, turns)
	call := len(m.calls)
	idx := call - 1
	if idx >= len(m.script) {
		idx = len(m.script) - 1
	}
	var result MockResult
	if idx >= 0 {
		result = m.script[idx]
	}
	hook := m.onCall
	block := m.blockCh
	m.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	if block != nil {
		<-block
	}

	return result.Answer, result.Err
}

func (m *MockClient) Model() string { return "mock" }

// Calls returns the number of Generate invocations so far.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// CallTurns returns the turns passed to the nth (0-based) invocation.
func (m *MockClient) CallTurns(n int) []prompt.Turn {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[n]
}
