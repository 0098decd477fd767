package greeting

import (
	"context"
	"sync"
)

// MockService implements Service for handler tests. It records the parameters of every Greet
// call and returns fixed strings.
type MockService struct {
	mu    sync.Mutex
	calls []GreetParams
	names []string
}

var _ Service = (*MockService)(nil)

// NewMockService creates an empty MockService.
func NewMockService() *MockService {
	return &MockService{}
}

func (m *MockService) Hello(context.Context) string {
	return "mock hello"
}

func (m *MockService) HelloJSON(context.Context) string {
	return "mock hello json"
}

func (m *MockService) HelloName(_ context.Context, name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names = append(m.names, name)
	return "mock hello " + name
}

func (m *MockService) Greet(_ context.Context, params GreetParams) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, params)
	return "mock greet"
}

// GreetCalls returns a copy of the recorded Greet parameters.
func (m *MockService) GreetCalls() []GreetParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]GreetParams(nil), m.calls...)
}

// HelloNameCalls returns a copy of the names passed to HelloName.
func (m *MockService) HelloNameCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.names...)
}
