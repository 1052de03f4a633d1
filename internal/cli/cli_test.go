package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/subedit/subedit/internal/timecode"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    timecode.Format
		wantErr bool
	}{
		{"srt", timecode.FormatSRT, false},
		{"SRT", timecode.FormatSRT, false},
		{"vtt", timecode.FormatVTT, false},
		{"ass", timecode.FormatSRT, true},
		{"", timecode.FormatSRT, true},
	}

	for _, tt := range tests {
		got, err := parseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseFormat(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFormat(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveAPIKeyExplicit(t *testing.T) {
	key, err := resolveAPIKey("my-key", "openai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "my-key" {
		t.Errorf("explicit key not preferred: %q", key)
	}
}

func TestResolveAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	key, err := resolveAPIKey("", "gemini")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "env-key" {
		t.Errorf("env key not used: %q", key)
	}
}

func TestResolveAPIKeyMissing(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := resolveAPIKey("", "openai"); err == nil {
		t.Error("expected error when no key is available")
	}
}

func TestResolveAPIKeyUnknownProvider(t *testing.T) {
	if _, err := resolveAPIKey("", "whisper"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestLoadSegments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.srt")

	content := "1\n00:00:01,000 --> 00:00:02,500\nHello world\n\n" +
		"2\n00:00:03,000 --> 00:00:05,000\nBye\n\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	segments, err := loadSegments(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Text != "Hello world" {
		t.Errorf("unexpected text: %q", segments[0].Text)
	}
}

func TestLoadSegmentsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.srt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadSegments(path); err == nil {
		t.Error("expected error for file without cues")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"convert", "correct", "split", "generate", "translate", "burn"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}
