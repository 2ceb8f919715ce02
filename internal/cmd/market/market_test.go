package market

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("market", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8085 {
		t.Fatalf("port = %d, want 8085", cfg.Port)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("OPENMINT_MARKET_PORT", "9000")

	fs := flag.NewFlagSet("market", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-port", "9001"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9001 {
		t.Fatalf("port = %d, want 9001", cfg.Port)
	}

	fs = flag.NewFlagSet("market", flag.ContinueOnError)
	cfg, err = ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("env port = %d, want 9000", cfg.Port)
	}
}
