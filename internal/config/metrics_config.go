package config

// MetricsConfig controls the optional Prometheus endpoint
type MetricsConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	ListenAddr string `json:"listen_addr,omitempty" yaml:"listen_addr,omitempty" toml:"listen_addr,omitempty" validate:"required_if=Enabled true"`
}

// NewDefaultMetricsConfig creates default metrics configuration
func NewDefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:    false,
		ListenAddr: DefaultMetricsListenAddr,
	}
}
