package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("JOB_BAND_ADMIN_MIN", "")
	t.Setenv("JOB_BAND_ASSIGN_MIN", "")
	t.Setenv("JOB_BAND_ASSIGN_MAX", "")
	t.Setenv("MAX_LOGIN_ATTEMPTS", "")

	cfg := Load()
	if cfg.DatabaseURL != "postgres://localhost/test" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.Bands.AdminMin != 900 || cfg.Bands.AssignMin != 300 || cfg.Bands.AssignMax != 800 {
		t.Errorf("Bands = %+v, want defaults 900/300/800", cfg.Bands)
	}
	if cfg.Login.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.Login.MaxAttempts)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JOB_BAND_ADMIN_MIN", "950")
	t.Setenv("JOB_BAND_ASSIGN_MIN", "400")
	t.Setenv("JOB_BAND_ASSIGN_MAX", "600")
	t.Setenv("MAX_LOGIN_ATTEMPTS", "5")

	cfg := Load()
	if cfg.Bands.AdminMin != 950 || cfg.Bands.AssignMin != 400 || cfg.Bands.AssignMax != 600 {
		t.Errorf("Bands = %+v, want 950/400/600", cfg.Bands)
	}
	if cfg.Login.MaxAttempts != 5 {
		t.Errorf("MaxAttempts = %d, want 5", cfg.Login.MaxAttempts)
	}
}

func TestLoad_IgnoresMalformedInt(t *testing.T) {
	t.Setenv("MAX_LOGIN_ATTEMPTS", "lots")

	cfg := Load()
	if cfg.Login.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want fallback 3", cfg.Login.MaxAttempts)
	}
}
