package providers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/titoTito21/titan-menu/internal/action"
	"github.com/titoTito21/titan-menu/internal/settings"
)

func writeManifest(t *testing.T, dir, file, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", file, err)
	}
}

func TestPluginsListManifestsSorted(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "b.json", `{"name":"word count","command":"wc"}`)
	writeManifest(t, dir, "a.json", `{"name":"screen reader","command":"srd","args":["--rate","50"]}`)
	writeManifest(t, dir, "notes.txt", "not a manifest")

	store := newTestStore(t, settings.Values{PluginDir: dir})
	p := NewPlugins(store, action.NewRegistry())

	nodes, err := p.Items(context.Background())
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 plugins, got %d", len(nodes))
	}
	if nodes[0].Name != "screen reader" || nodes[1].Name != "word count" {
		t.Fatalf("expected alphabetical order, got %q %q", nodes[0].Name, nodes[1].Name)
	}
}

func TestPluginsBrokenManifestSkipped(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "good.json", `{"name":"clipboard","command":"clip"}`)
	writeManifest(t, dir, "garbled.json", `{"name":`)
	writeManifest(t, dir, "incomplete.json", `{"name":"no command"}`)

	store := newTestStore(t, settings.Values{PluginDir: dir})
	p := NewPlugins(store, action.NewRegistry())

	nodes, err := p.Items(context.Background())
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Name != "clipboard" {
		t.Fatalf("expected only the valid manifest, got %+v", nodes)
	}
}

func TestPluginsNoDirectoryConfigured(t *testing.T) {
	store := newTestStore(t, settings.Values{})
	p := NewPlugins(store, action.NewRegistry())
	nodes, err := p.Items(context.Background())
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(nodes) != 0 {
		t.Fatalf("expected empty list without a plugin directory, got %d", len(nodes))
	}
}

func TestPluginsHandleReusedAcrossRebuilds(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "one.json", `{"name":"notes","command":"notes"}`)
	store := newTestStore(t, settings.Values{PluginDir: dir})
	p := NewPlugins(store, action.NewRegistry())

	first, err := p.Items(context.Background())
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	second, err := p.Items(context.Background())
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if first[0].Action != second[0].Action {
		t.Fatalf("expected the same handle across rebuilds")
	}
}
