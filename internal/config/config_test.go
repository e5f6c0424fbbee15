package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.GinMode != "release" {
		t.Errorf("Server.GinMode = %q, want %q", cfg.Server.GinMode, "release")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "text")
	}
	if cfg.Database.URL != "postgres://localhost:5432/restrooms" {
		t.Errorf("Database.URL = %q, want the local default", cfg.Database.URL)
	}
	if cfg.Overpass.Endpoint != "https://overpass-api.de/api/interpreter" {
		t.Errorf("Overpass.Endpoint = %q, want the public interpreter", cfg.Overpass.Endpoint)
	}
	if cfg.Overpass.TimeoutSeconds != 10 {
		t.Errorf("Overpass.TimeoutSeconds = %d, want 10", cfg.Overpass.TimeoutSeconds)
	}
	if cfg.Resolver.RadiusMeters != 500 {
		t.Errorf("Resolver.RadiusMeters = %v, want 500", cfg.Resolver.RadiusMeters)
	}
	if cfg.Resolver.MinResults != 3 {
		t.Errorf("Resolver.MinResults = %d, want 3", cfg.Resolver.MinResults)
	}
	if cfg.Resolver.MaxResults != 5 {
		t.Errorf("Resolver.MaxResults = %d, want 5", cfg.Resolver.MaxResults)
	}
	if cfg.Session.TTLMinutes != 30 {
		t.Errorf("Session.TTLMinutes = %d, want 30", cfg.Session.TTLMinutes)
	}

	if addr := cfg.GetServerAddr(); addr != ":8080" {
		t.Errorf("GetServerAddr() = %q, want %q", addr, ":8080")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("RESTROOM_FINDER_SERVER_PORT", "9090")
	t.Setenv("RESTROOM_FINDER_DATABASE_URL", "postgres://db.internal:5432/restrooms")
	t.Setenv("RESTROOM_FINDER_RESOLVER_RADIUSMETERS", "750")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want env override 9090", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://db.internal:5432/restrooms" {
		t.Errorf("Database.URL = %q, want env override", cfg.Database.URL)
	}
	if cfg.Resolver.RadiusMeters != 750 {
		t.Errorf("Resolver.RadiusMeters = %v, want env override 750", cfg.Resolver.RadiusMeters)
	}
}
