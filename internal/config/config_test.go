package config

import (
	"testing"

	"github.com/lmendes/go-atp-h2h/internal/tennisdata"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SourceURL != tennisdata.DefaultBaseURL {
		t.Errorf("SourceURL = %q", cfg.SourceURL)
	}
	if cfg.FromYear != 2000 || cfg.ToYear != 2022 {
		t.Errorf("season range = %d-%d, want 2000-2022", cfg.FromYear, cfg.ToYear)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath should default to a path under the user home")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ATPH2H_DB", "/tmp/test.db")
	t.Setenv("ATPH2H_SOURCE_URL", "http://localhost:8080")
	t.Setenv("ATPH2H_FROM", "2010")
	t.Setenv("ATPH2H_TO", "2012")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/test.db" || cfg.SourceURL != "http://localhost:8080" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.FromYear != 2010 || cfg.ToYear != 2012 {
		t.Errorf("season range = %d-%d, want 2010-2012", cfg.FromYear, cfg.ToYear)
	}
}

func TestLoad_InvertedRange(t *testing.T) {
	t.Setenv("ATPH2H_FROM", "2020")
	t.Setenv("ATPH2H_TO", "2010")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for inverted season range")
	}
}
