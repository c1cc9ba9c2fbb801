package llm

import (
	"errors"
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"EXPLAINTHIS_LLM_PROVIDER",
		"EXPLAINTHIS_GEMINI_API_KEY", "EXPLAINTHIS_GEMINI_MODEL",
		"EXPLAINTHIS_OPENAI_API_KEY", "EXPLAINTHIS_OPENAI_MODEL", "EXPLAINTHIS_OPENAI_BASE_URL",
		"EXPLAINTHIS_ANTHROPIC_API_KEY", "EXPLAINTHIS_ANTHROPIC_MODEL",
		"EXPLAINTHIS_OPENROUTER_API_KEY", "EXPLAINTHIS_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("default gemini model = %q", cfg.Gemini.Model)
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("EXPLAINTHIS_LLM_PROVIDER", "anthropic")
	t.Setenv("EXPLAINTHIS_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("EXPLAINTHIS_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("model = %q", cfg.Anthropic.Model)
	}
	// Unset values keep defaults.
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("openai model = %q, want default", cfg.OpenAI.Model)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"gemini with key", func(c *Config) { c.Gemini.APIKey = "k" }, false},
		{"gemini without key", func(c *Config) {}, true},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "skynet" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_MissingCredentialType(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()

	var missing *ErrMissingCredential
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if missing.Provider != "gemini" || missing.EnvVar != "EXPLAINTHIS_GEMINI_API_KEY" {
		t.Errorf("unexpected error detail: %+v", missing)
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	clearProviderEnv(t)

	// Nothing set: not found.
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovery with empty env")
	}

	// OpenAI key only.
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-openai" {
		t.Errorf("discovered %+v (ok=%v)", cfg, ok)
	}

	// Gemini key wins over OpenAI.
	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
		t.Errorf("discovered %+v (ok=%v), want gemini priority", cfg, ok)
	}
}

func TestResolveModel(t *testing.T) {
	models := map[string]string{"claude-haiku": "claude-haiku-4-5-20251001"}

	if got := resolveModel("claude-haiku", models); got != "claude-haiku-4-5-20251001" {
		t.Errorf("friendly name resolved to %q", got)
	}
	if got := resolveModel("claude-3-custom", models); got != "claude-3-custom" {
		t.Errorf("direct model id passed through as %q", got)
	}
}
