package internal

import (
	"log/slog"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if cfg.App.HTTP.Address() != ":3000" {
		t.Errorf("address = %q, want :3000", cfg.App.HTTP.Address())
	}
}

func TestHTTPConfig_PortBounds(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 3000}
	if err := cfg.Validate(); err != nil {
		t.Errorf("port 3000 should pass: %v", err)
	}
}

func TestStoreConfig_DataDirRequired(t *testing.T) {
	cfg := StoreConfig{DataDir: ""}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty data_dir should fail validation")
	}
}

func TestApplicationConfig_LogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, c := range cases {
		cfg := ApplicationConfig{LogLevel: c.in, HTTP: HTTPConfig{Port: 3000}}
		if err := cfg.Validate(); err != nil {
			t.Errorf("level %q should pass: %v", c.in, err)
		}
		if got := cfg.SlogLevel(); got != c.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestApplicationConfig_InvalidLogLevel(t *testing.T) {
	cfg := ApplicationConfig{LogLevel: "loud", HTTP: HTTPConfig{Port: 3000}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid log level should fail validation")
	}
}
