package wifiscan

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func TestDefaultScanConfigIsValid(t *testing.T) {
	if err := DefaultScanConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ScanConfig)
		want   string
	}{
		{"backend", func(c *ScanConfig) { c.Backend = "nmcli" }, "backend"},
		{"timeout", func(c *ScanConfig) { c.Timeout = 0 }, "timeout"},
		{"interval", func(c *ScanConfig) { c.Interval = -time.Second }, "interval"},
		{"port", func(c *ScanConfig) { c.Port = 70000 }, "port"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultScanConfig()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want an error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wifiscan.yaml")
	data := "interface: wlan1\nbackend: iwlist\ntimeout: 5s\nport: 9000\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c := DefaultScanConfig()
	if err := LoadConfigFile(path, &c); err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}

	want := DefaultScanConfig()
	want.Interface = "wlan1"
	want.Backend = "iwlist"
	want.Timeout = 5 * time.Second
	want.Port = 9000
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	c := DefaultScanConfig()
	if err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"), &c); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"WIFISCAN_INTERFACE":      "wlp3s0",
		"WIFISCAN_AP_FORCE":       "false",
		"WIFISCAN_SKIP_MALFORMED": "true",
		"WIFISCAN_PORT":           "8181",
		"WIFISCAN_INTERVAL":       "1m",
	}
	c := DefaultScanConfig()
	if err := ApplyEnv(&c, func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	want := DefaultScanConfig()
	want.Interface = "wlp3s0"
	want.APForce = false
	want.SkipMalformed = true
	want.Port = 8181
	want.Interval = time.Minute
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	env := map[string]string{
		"WIFISCAN_PORT":    "eighty",
		"WIFISCAN_TIMEOUT": "soon",
	}
	c := DefaultScanConfig()
	err := ApplyEnv(&c, func(k string) string { return env[k] })
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, key := range []string{"WIFISCAN_PORT", "WIFISCAN_TIMEOUT"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	c := DefaultScanConfig()
	c.JSONLogs = true
	c.Verbose = true

	log := NewLogger(c, &buf)
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %s, want debug", log.GetLevel())
	}
	log.WithField("interface", "wlan0").Debug("hello")
	if !strings.Contains(buf.String(), `"interface":"wlan0"`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}
