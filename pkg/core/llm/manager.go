package llm

import "fmt"

// Config selects the active provider and per-provider model overrides,
// typically loaded from config/models.yaml.
type Config struct {
	ActiveProvider string                    `yaml:"active_provider"`
	Providers      map[string]ProviderConfig `yaml:"providers"`
}

// ProviderConfig holds one provider's settings.
type ProviderConfig struct {
	Model       string `yaml:"model"`
	Description string `yaml:"description"`
}

// Manager resolves providers by name from the loaded config.
type Manager struct {
	config    Config
	providers map[string]Provider
}

// NewManager builds the provider registry from config.
func NewManager(config Config) *Manager {
	providers := map[string]Provider{
		"gemini":   &GeminiProvider{Model: config.Providers["gemini"].Model},
		"deepseek": &DeepSeekProvider{Model: config.Providers["deepseek"].Model},
	}
	return &Manager{config: config, providers: providers}
}

// Active returns the configured provider, or nil when none is configured;
// callers fall back to rule-based insight generation in that case.
func (m *Manager) Active() Provider {
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}
	return nil
}

// GetProviderByName retrieves a provider by name ("gemini", "deepseek").
func (m *Manager) GetProviderByName(name string) Provider {
	return m.providers[name]
}

// SetGlobalProvider switches the active provider.
func (m *Manager) SetGlobalProvider(name string) error {
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("provider %s not found", name)
	}
	m.config.ActiveProvider = name
	return nil
}

// GetActiveProvider returns the active provider's name.
func (m *Manager) GetActiveProvider() string {
	return m.config.ActiveProvider
}
