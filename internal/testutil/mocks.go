// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/oss-curator/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockStateStore is an in-memory domain.StateStore that records writes.
// Fields are ordered to minimize memory padding.
type MockStateStore struct {
	ReadErr  error
	WriteErr error
	Data     map[string][]byte
	Writes   int
	Reads    int
	mu       sync.Mutex
}

// NewMockStateStore creates a MockStateStore with an initialized map.
func NewMockStateStore() *MockStateStore {
	return &MockStateStore{Data: make(map[string][]byte)}
}

// Read returns the stored record or domain.ErrStateNotFound.
func (m *MockStateStore) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reads++
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	v, ok := m.Data[key]
	if !ok {
		return nil, domain.ErrStateNotFound
	}
	return append([]byte(nil), v...), nil
}

// Write stores value unless WriteErr is set. Attempts are counted either way.
func (m *MockStateStore) Write(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Data[key] = append([]byte(nil), value...)
	return nil
}

// MockOverlay counts panel transitions.
type MockOverlay struct {
	Presented int
	Dismissed int
}

// Present records a panel open.
func (m *MockOverlay) Present() { m.Presented++ }

// Dismiss records a panel close.
func (m *MockOverlay) Dismiss() { m.Dismissed++ }

// MockLinkOpener records opened links.
type MockLinkOpener struct {
	OpenErr error
	Opened  []string
}

// Open records url.
func (m *MockLinkOpener) Open(_ context.Context, url string) error {
	if m.OpenErr != nil {
		return m.OpenErr
	}
	m.Opened = append(m.Opened, url)
	return nil
}

// MockLogger collects log lines as "LEVEL [category] msg".
type MockLogger struct {
	Lines []string
}

func (m *MockLogger) log(level, category, msg string) {
	m.Lines = append(m.Lines, fmt.Sprintf("%s [%s] %s", level, category, msg))
}

// Debug records a debug line.
func (m *MockLogger) Debug(category, msg string) { m.log("DEBUG", category, msg) }

// Info records an info line.
func (m *MockLogger) Info(category, msg string) { m.log("INFO", category, msg) }

// Warn records a warning line.
func (m *MockLogger) Warn(category, msg string) { m.log("WARN", category, msg) }

// Error records an error line.
func (m *MockLogger) Error(category, msg string) { m.log("ERROR", category, msg) }

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a MockConfigLoader returning defaults.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// Ensure mocks satisfy their interfaces.
var (
	_ domain.Clock        = (*MockClock)(nil)
	_ domain.StateStore   = (*MockStateStore)(nil)
	_ domain.Overlay      = (*MockOverlay)(nil)
	_ domain.LinkOpener   = (*MockLinkOpener)(nil)
	_ domain.Logger       = (*MockLogger)(nil)
	_ domain.ConfigLoader = (*MockConfigLoader)(nil)
)

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr    error
	InitConfig *domain.Config
	ConfigInfo domain.ConfigInfo
}

// NewMockConfigManager creates a MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// Info returns the configured info.
func (m *MockConfigManager) Info() domain.ConfigInfo {
	return m.ConfigInfo
}

// Init records cfg.
func (m *MockConfigManager) Init(cfg *domain.Config) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.InitConfig = cfg
	m.ConfigInfo.Exists = true
	return nil
}

var _ domain.ConfigManager = (*MockConfigManager)(nil)
