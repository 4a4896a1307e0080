package render

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/wastenot/wastenot/internal/config"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Width != 80 {
		t.Errorf("expected Width=80, got %d", opts.Width)
	}
	if opts.Style != StyleDark {
		t.Errorf("expected Style=%q, got %s", StyleDark, opts.Style)
	}
	if !opts.EnableEmoji || !opts.PreserveNewLines {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestOptionsChaining(t *testing.T) {
	opts := DefaultOptions().WithWidth(100).WithStyle(StyleLight).WithEmoji(false)

	if opts.Width != 100 || opts.Style != StyleLight || opts.EnableEmoji {
		t.Errorf("chaining did not apply: %+v", opts)
	}
}

// resetRenderers gives the test an empty renderer cache
func resetRenderers(t *testing.T) {
	t.Helper()
	orig := renderers
	renderers = newRendererCache()
	t.Cleanup(func() { renderers = orig })
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name   string
		style  string
		want   string
		absent string
	}{
		{"dark renders emphasis as styling", StyleDark, "Great, where are you located?", "**"},
		{"ascii keeps emphasis markers", StyleASCII, "**Great**, where are you located?", ""},
		{"notty matches ascii", StyleNoTTY, "**Great**, where are you located?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetRenderers(t)
			out, err := Markdown("**Great**, where are you located?", DefaultOptions().WithStyle(tt.style))
			if err != nil {
				t.Fatalf("Markdown() error = %v", err)
			}
			plain := ansi.Strip(out)
			if !strings.Contains(plain, tt.want) {
				t.Errorf("Markdown() = %q, want it to contain %q", plain, tt.want)
			}
			if tt.absent != "" && strings.Contains(plain, tt.absent) {
				t.Errorf("Markdown() = %q, should not contain %q", plain, tt.absent)
			}
		})
	}
}

func TestRendererCache_Reuse(t *testing.T) {
	resetRenderers(t)
	opts := DefaultOptions().WithStyle(StyleASCII)

	for _, content := range []string{"first", "again"} {
		if _, err := Markdown(content, opts); err != nil {
			t.Fatal(err)
		}
	}
	if renderers.size() != 1 {
		t.Errorf("same options should reuse one renderer, size = %d", renderers.size())
	}

	if _, err := Markdown("empty style", opts.WithStyle("")); err != nil {
		t.Fatal(err)
	}
	if _, err := Markdown("dark style", opts.WithStyle(StyleDark)); err != nil {
		t.Fatal(err)
	}
	if renderers.size() != 2 {
		t.Errorf("an empty style should share the dark renderer, size = %d", renderers.size())
	}
}

func TestRendererCache_EvictsLeastRecentlyUsed(t *testing.T) {
	resetRenderers(t)
	base := DefaultOptions().WithStyle(StyleASCII)

	for width := 40; width < 40+maxRenderers; width++ {
		if _, err := Markdown("x", base.WithWidth(width)); err != nil {
			t.Fatal(err)
		}
	}
	// touch the oldest so the second oldest is evicted instead
	if _, err := Markdown("x", base.WithWidth(40)); err != nil {
		t.Fatal(err)
	}
	if _, err := Markdown("x", base.WithWidth(200)); err != nil {
		t.Fatal(err)
	}

	if renderers.size() != maxRenderers {
		t.Fatalf("size = %d, want %d", renderers.size(), maxRenderers)
	}
	if _, ok := renderers.entries[base.WithWidth(40)]; !ok {
		t.Error("recently used renderer was evicted")
	}
	if _, ok := renderers.entries[base.WithWidth(41)]; ok {
		t.Error("least recently used renderer should be evicted")
	}
}

func TestRendererCache_DoesNotCacheFailures(t *testing.T) {
	resetRenderers(t)
	if _, err := Markdown("x", DefaultOptions().WithStyle(filepath.Join(t.TempDir(), "missing.json"))); err == nil {
		t.Fatal("expected error for a missing style file")
	}
	if renderers.size() != 0 {
		t.Errorf("failed build should not be cached, size = %d", renderers.size())
	}
}

func TestMarkdownConcurrent(t *testing.T) {
	resetRenderers(t)
	opts := DefaultOptions().WithStyle(StyleASCII)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := Markdown("- rice\n- beans", opts); err != nil {
				t.Errorf("Markdown() error = %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestReply_FallsBackOnBadStyle(t *testing.T) {
	resetRenderers(t)
	opts := DefaultOptions().WithStyle(filepath.Join(t.TempDir(), "missing.json"))

	if got := Reply("plain *text*", opts); got != "plain *text*" {
		t.Errorf("Reply() = %q, want raw text", got)
	}
}

func TestValidateStyle(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "style.json")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		style   string
		wantErr bool
	}{
		{StyleDark, false},
		{StyleTokyoNight, false},
		{StyleNoTTY, false},
		{file, false},
		{dir, true},
		{"sparkly", true},
	}
	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestOptionsFromConfig(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", "")
	cfg := config.DefaultConfig()
	cfg.Markdown.Style = StyleLight
	cfg.Markdown.EnableEmoji = false

	opts := OptionsFromConfig(cfg, 60)
	if opts.Style != StyleLight || opts.EnableEmoji || opts.Width != 60 {
		t.Errorf("OptionsFromConfig() = %+v", opts)
	}

	if OptionsFromConfig(cfg, 0).Width != 80 {
		t.Error("zero width should keep the default")
	}

	t.Setenv("GLAMOUR_STYLE", StyleDracula)
	if got := OptionsFromConfig(cfg, 60).Style; got != StyleDracula {
		t.Errorf("GLAMOUR_STYLE should win, got %s", got)
	}
}
