package qtable

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the settings of a truth table build.
type Config struct {
	// Workers is the number of concurrent simulations. 1 simulates the
	// states one after the other.
	Workers int
	// StateTimeout bounds a single state simulation. 0 disables it.
	StateTimeout time.Duration
	// CacheSize is the number of tables kept by a TableCache. 0 disables it.
	CacheSize int
	// MaxDataQubits caps the table size before any row is allocated.
	MaxDataQubits int
	Mode          Mode
	Style         string
}

func NewConfig() *Config {
	return &Config{
		Workers:       1,
		StateTimeout:  0,
		CacheSize:     16,
		MaxDataQubits: 20,
		Mode:          LineAware,
		Style:         "light",
	}
}

/*
LoadConfig reads the configuration from the optional file at path and from
QTABLE_ prefixed environment variables, e.g. QTABLE_WORKERS or
QTABLE_STATE_TIMEOUT. Unset keys keep the NewConfig defaults.
*/
func LoadConfig(path string) (*Config, error) {
	defaults := NewConfig()

	v := viper.New()
	v.SetEnvPrefix("qtable")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("state_timeout", defaults.StateTimeout)
	v.SetDefault("cache_size", defaults.CacheSize)
	v.SetDefault("max_data_qubits", defaults.MaxDataQubits)
	v.SetDefault("mode", defaults.Mode.String())
	v.SetDefault("style", defaults.Style)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	mode, err := ParseMode(v.GetString("mode"))
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}

	cfg := &Config{
		Workers:       v.GetInt("workers"),
		StateTimeout:  v.GetDuration("state_timeout"),
		CacheSize:     v.GetInt("cache_size"),
		MaxDataQubits: v.GetInt("max_data_qubits"),
		Mode:          mode,
		Style:         v.GetString("style"),
	}
	if cfg.Workers < 1 {
		return nil, errors.Errorf("config: workers must be positive, got %d", cfg.Workers)
	}
	if cfg.StateTimeout < 0 {
		return nil, errors.Errorf("config: negative state timeout %v", cfg.StateTimeout)
	}
	if cfg.MaxDataQubits < 1 || cfg.MaxDataQubits > MaxDataQubits {
		return nil, errors.Errorf(
			"config: max_data_qubits must be in [1, %d], got %d", MaxDataQubits, cfg.MaxDataQubits,
		)
	}
	return cfg, nil
}
