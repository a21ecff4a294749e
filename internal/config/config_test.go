package config

import "testing"

func TestValidate_DevAllowsDemoDefaults(t *testing.T) {
	cfg := &Config{Env: "development", DBMaxConns: 20, DBMinConns: 5, AdminPassword: "password"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := &Config{Env: "production", DBMaxConns: 20, DBMinConns: 5, AdminPassword: "s3cret"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing JWT_SECRET")
	}
}

func TestValidate_ProductionRejectsDemoPassword(t *testing.T) {
	cfg := &Config{Env: "production", JWTSecret: "k", DBMaxConns: 20, DBMinConns: 5, AdminPassword: "password"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for demo password in production")
	}
}

func TestValidate_PoolBounds(t *testing.T) {
	cfg := &Config{Env: "development", DBMaxConns: 2, DBMinConns: 5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for max conns below min conns")
	}
}

func TestIsDev(t *testing.T) {
	if !(&Config{Env: "development"}).IsDev() {
		t.Error("expected IsDev for development env")
	}
	if (&Config{Env: "production"}).IsDev() {
		t.Error("did not expect IsDev for production env")
	}
}
