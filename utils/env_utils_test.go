package utils

import "testing"

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("RMS_TEST_ENV_KEY", "value-from-env")
	if got := EnvOrDefault("RMS_TEST_ENV_KEY", "fallback"); got != "value-from-env" {
		t.Fatalf("expected env value, got %q", got)
	}

	t.Setenv("RMS_TEST_ENV_BLANK", "   ")
	if got := EnvOrDefault("RMS_TEST_ENV_BLANK", "fallback"); got != "fallback" {
		t.Fatalf("blank env should fall back, got %q", got)
	}

	if got := EnvOrDefault("RMS_TEST_ENV_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("missing env should fall back, got %q", got)
	}
}
