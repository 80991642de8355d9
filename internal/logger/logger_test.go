package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	if err := Init("debug", path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Log.SetOutput(os.Stderr) })

	if Log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want debug", Log.GetLevel())
	}
	Log.Info("hello file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Fatalf("log file = %q, want message", data)
	}
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	if err := Init("chatty", ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if Log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want info", Log.GetLevel())
	}
}
