package wifiscan

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type ScanConfig struct {
	Interface     string        `yaml:"interface"`
	Backend       string        `yaml:"backend"` // iw, iwlist
	APForce       bool          `yaml:"ap_force"`
	Timeout       time.Duration `yaml:"timeout"`
	SkipMalformed bool          `yaml:"skip_malformed"`
	Bind          string        `yaml:"bind"`
	Port          int           `yaml:"port"`
	Interval      time.Duration `yaml:"interval"` // websocket rescan period
	Verbose       bool          `yaml:"verbose"`
	JSONLogs      bool          `yaml:"json_logs"`
}

func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Backend:  "iw",
		APForce:  true,
		Timeout:  15 * time.Second,
		Bind:     "127.0.0.1",
		Port:     8080,
		Interval: 30 * time.Second,
	}
}

// LoadConfigFile overlays the YAML file at path onto config. Keys missing
// from the file keep their current value.
func LoadConfigFile(path string, config *ScanConfig) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, config); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays WIFISCAN_* variables onto config.
func ApplyEnv(config *ScanConfig, getenv func(string) string) error {
	var errs []error

	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v := getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}
	duration := func(key string, dst *time.Duration) {
		if v := getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = d
		}
	}

	str("WIFISCAN_INTERFACE", &config.Interface)
	str("WIFISCAN_BACKEND", &config.Backend)
	boolean("WIFISCAN_AP_FORCE", &config.APForce)
	duration("WIFISCAN_TIMEOUT", &config.Timeout)
	boolean("WIFISCAN_SKIP_MALFORMED", &config.SkipMalformed)
	str("WIFISCAN_BIND", &config.Bind)
	if v := getenv("WIFISCAN_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("WIFISCAN_PORT: %w", err))
		} else {
			config.Port = p
		}
	}
	duration("WIFISCAN_INTERVAL", &config.Interval)
	boolean("WIFISCAN_VERBOSE", &config.Verbose)
	boolean("WIFISCAN_JSON_LOGS", &config.JSONLogs)

	return errors.Join(errs...)
}

func (t ScanConfig) Validate() error {
	var errs []error
	switch t.Backend {
	case "iw", "iwlist":
	default:
		errs = append(errs, fmt.Errorf("backend must be iw or iwlist, got %q", t.Backend))
	}
	if t.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", t.Timeout))
	}
	if t.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %s", t.Interval))
	}
	if t.Port < 1 || t.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535, got %d", t.Port))
	}
	return errors.Join(errs...)
}
