package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Fatalf("LLM.Model = %q, want gpt-4o-mini", cfg.LLM.Model)
	}
	if cfg.Mail.Port != 587 {
		t.Fatalf("Mail.Port = %d, want 587", cfg.Mail.Port)
	}
}

func TestLoadWarnsWithoutDatabaseURL(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want DATABASE_URL warning")
	}
	if cfg.StoreDriver != StorePostgres {
		t.Fatalf("StoreDriver = %q, want postgres", cfg.StoreDriver)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("store_driver: memory\nlisten_addr: \":9000\"\nllm:\n  model: file-model\n  timeout: 5s\nmail:\n  smtp_host: smtp.example.test\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("OPENAI_MODEL", "env-model")
	t.Setenv("NOTIFICATION_RECIPIENTS", "ops@acme.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ListenAddr != ":9000" {
		t.Fatalf("ListenAddr = %q, want :9000", cfg.ListenAddr)
	}
	if cfg.LLM.Model != "env-model" {
		t.Fatalf("LLM.Model = %q, want env-model", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 5*time.Second {
		t.Fatalf("LLM.Timeout = %v, want 5s", cfg.LLM.Timeout)
	}
	if cfg.Mail.Host != "smtp.example.test" {
		t.Fatalf("Mail.Host = %q", cfg.Mail.Host)
	}
	if cfg.NotificationRecipients != "ops@acme.test" {
		t.Fatalf("NotificationRecipients = %q", cfg.NotificationRecipients)
	}
}
