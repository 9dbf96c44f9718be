package mocks

import "sync"

// Mock NATS publisher
type MockPublisher struct {
	mu       sync.Mutex
	Err      error
	Subjects []string
	Payloads [][]byte
}

func (m *MockPublisher) Publish(subject string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Subjects = append(m.Subjects, subject)
	m.Payloads = append(m.Payloads, data)
	return m.Err
}
