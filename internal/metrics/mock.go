package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	pairingsGenerated   int
	byesAssigned        int
	generationDurations []float64
	roundsProcessed     int
	slackNotifSent      int
	slackNotifFailed    int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		generationDurations: make([]float64, 0),
	}
}

func (m *Mock) IncPairingsGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pairingsGenerated++
}

func (m *Mock) IncByesAssigned() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byesAssigned++
}

func (m *Mock) ObserveGenerationDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generationDurations = append(m.generationDurations, duration)
}

func (m *Mock) IncRoundsProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roundsProcessed++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PairingsGenerated returns the number of times IncPairingsGenerated was called.
func (m *Mock) PairingsGenerated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pairingsGenerated
}

// ByesAssigned returns the number of times IncByesAssigned was called.
func (m *Mock) ByesAssigned() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byesAssigned
}

// GenerationDurations returns the observed generation durations.
func (m *Mock) GenerationDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.generationDurations...)
}

// RoundsProcessed returns the number of times IncRoundsProcessed was called.
func (m *Mock) RoundsProcessed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roundsProcessed
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// MockStore is an in-memory MetricsStore.
type MockStore struct {
	mu       sync.Mutex
	counters map[string]int
}

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{counters: make(map[string]int)}
}

func (m *MockStore) Increment(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
}

func (m *MockStore) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.counters))
	for k, v := range m.counters {
		out[k] = v
	}
	return out, nil
}

// Get returns a single counter.
func (m *MockStore) Get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[key]
}
