// ABOUTME: Feature flags for toggling preview server capabilities
// ABOUTME: Environment-driven kill switches with in-process overrides

package featureflags

import (
	"context"
	"os"
	"strings"
	"sync"
)

// FeatureFlag identifies one toggleable capability
type FeatureFlag string

// Defined feature flags. Each one gates a capability the engine degrades
// without: turning a flag off has the same effect as deploying into an
// environment that lacks the capability.
const (
	// DocumentInfo enables readability summaries of design documents
	DocumentInfo FeatureFlag = "document_info"

	// AssetAudit enables the asset audit endpoint
	AssetAudit FeatureFlag = "asset_audit"

	// RemoteScreens enables mounting screens from remote export URLs
	RemoteScreens FeatureFlag = "remote_screens"
)

// allFlags lists every defined flag for GetAllFlags
var allFlags = []FeatureFlag{DocumentInfo, AssetAudit, RemoteScreens}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled sets a feature flag's state (for testing)
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all defined flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager implements Manager using environment variables
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		prefix:    prefix,
	}
}

// IsEnabled checks if a feature flag is enabled. Flags default to enabled;
// only an explicit "false", "0" or "disabled" in the environment turns one
// off.
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	if enabled, ok := m.overrides[flag]; ok {
		m.mu.RUnlock()
		return enabled
	}
	m.mu.RUnlock()

	// Check environment variable
	envKey := m.prefix + strings.ToUpper(string(flag))
	value := strings.ToLower(os.Getenv(envKey))

	return value != "false" && value != "0" && value != "disabled"
}

// SetEnabled sets a feature flag's state (mainly for testing)
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(allFlags))
	for _, flag := range allFlags {
		flags[flag] = m.IsEnabled(ctx, flag)
	}
	return flags
}

// StaticManager implements Manager with static configuration
type StaticManager struct {
	flags map[FeatureFlag]bool
	mu    sync.RWMutex
}

// NewStaticManager creates a manager with predefined flag states
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	if flags == nil {
		flags = make(map[FeatureFlag]bool)
	}
	return &StaticManager{
		flags: flags,
	}
}

// IsEnabled checks if a feature flag is enabled. Flags absent from the
// configured map count as enabled, matching the env manager's default.
func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if enabled, ok := m.flags[flag]; ok {
		return enabled
	}
	return true
}

// SetEnabled sets a feature flag's state
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns all defined flag states
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	result := make(map[FeatureFlag]bool, len(allFlags))
	for _, flag := range allFlags {
		result[flag] = m.IsEnabled(ctx, flag)
	}
	return result
}
