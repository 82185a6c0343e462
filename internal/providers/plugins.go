package providers

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/titoTito21/titan-menu/internal/action"
	"github.com/titoTito21/titan-menu/internal/menu"
	"github.com/titoTito21/titan-menu/internal/settings"
)

// SourcePlugins is the provider name for plugin-contributed actions.
const SourcePlugins = "plugins"

// pluginManifest is the on-disk description of one contributed action.
type pluginManifest struct {
	Name    string   `json:"name"`
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// Plugins reads manifest files from the plugin directory and serves each as
// an action leaf. Manifests are re-read on every menu entry; handles are
// registered once per manifest path and reused across rebuilds.
type Plugins struct {
	store    *settings.Store
	registry *action.Registry

	mu      sync.Mutex
	handles map[string]action.Handle
}

func NewPlugins(store *settings.Store, registry *action.Registry) *Plugins {
	return &Plugins{store: store, registry: registry, handles: make(map[string]action.Handle)}
}

func (p *Plugins) Name() string { return SourcePlugins }

func (p *Plugins) Items(ctx context.Context) ([]menu.Node, error) {
	dir := p.store.Snapshot().PluginDir
	if dir == "" {
		return nil, nil
	}
	listing, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var nodes []menu.Node
	for _, de := range listing {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, de.Name())
		manifest, err := readManifest(path)
		if err != nil {
			// One broken manifest must not hide the rest.
			continue
		}
		nodes = append(nodes, menu.Leaf(manifest.Name, p.handleFor(path, manifest)))
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
	return nodes, nil
}

func readManifest(path string) (pluginManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pluginManifest{}, err
	}
	var m pluginManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return pluginManifest{}, err
	}
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Command) == "" {
		return pluginManifest{}, fmt.Errorf("manifest %s: name and command are required", path)
	}
	return m, nil
}

func (p *Plugins) handleFor(path string, m pluginManifest) action.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok := p.handles[path]; ok {
		return h
	}
	command := m.Command
	args := append([]string(nil), m.Args...)
	h := p.registry.RegisterPlugin(m.Name, func() error {
		cmd := exec.Command(command, args...)
		if err := cmd.Start(); err != nil {
			return err
		}
		return cmd.Process.Release()
	})
	p.handles[path] = h
	return h
}
