package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %s", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"trace level", Config{Level: "trace", Format: "console"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l := FromZerolog(zerolog.New(&buf), "guardkit").
		WithComponent("guard").
		WithFields(map[string]interface{}{FieldShape: "list"})

	l.Info("wrapped", Fields(FieldMethod, "Withdraw"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry[FieldComponent] != "guard" {
		t.Errorf("expected component field, got %v", entry[FieldComponent])
	}
	if entry[FieldShape] != "list" {
		t.Errorf("expected shape field, got %v", entry[FieldShape])
	}
	if entry[FieldMethod] != "Withdraw" {
		t.Errorf("expected method field, got %v", entry[FieldMethod])
	}
}

func TestFieldsOddPairs(t *testing.T) {
	m := Fields("a", 1, "dangling")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("expected single pair, got %v", m)
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	// Must not panic and must not write anywhere.
	l.Debug("ignored")
	l.Error("ignored", Fields("k", "v"))
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(zerolog.WarnLevel)
	l := FromZerolog(zl, "t")
	l.Debug("hidden")
	l.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn message should be emitted")
	}
}
