package store

import "sync"

// Memory is an in-process Storage. Failures can be injected for tests.
type Memory struct {
	mu       sync.Mutex
	slots    map[string][]byte
	readErr  error
	writeErr error
	writes   int
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

func (m *Memory) Read(slot string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	val, ok := m.slots[slot]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), val...), nil
}

func (m *Memory) Write(slot string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.slots[slot] = append([]byte(nil), data...)
	m.writes++
	return nil
}

// Put seeds a slot directly.
func (m *Memory) Put(slot, raw string) {
	m.mu.Lock()
	m.slots[slot] = []byte(raw)
	m.mu.Unlock()
}

// Has reports whether slot holds a value.
func (m *Memory) Has(slot string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.slots[slot]
	return ok
}

// Writes counts successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// FailReads makes every Read return err. A nil err clears the failure.
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	m.readErr = err
	m.mu.Unlock()
}

// FailWrites makes every Write return err. A nil err clears the failure.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	m.writeErr = err
	m.mu.Unlock()
}
