// Package providers implements the content sources the menu builder queries:
// installed applications, games, live status values, plugin registrations,
// and the launch-history recent list.
package providers

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/titoTito21/titan-menu/internal/action"
	"github.com/titoTito21/titan-menu/internal/menu"
	"github.com/titoTito21/titan-menu/internal/settings"
)

// SourceApplications is the provider name for the installed-application list.
const SourceApplications = "applications"

// SourceGames is the provider name for the game list.
const SourceGames = "games"

var launchableExtensions = map[string]struct{}{
	".desktop":  {},
	".sh":       {},
	".appimage": {},
}

// DirScanner discovers launchable entries under a set of directories and
// serves them as action leaves. Each distinct path gets one registered handle;
// rescans reuse it, so the action table stays bounded by the number of
// distinct entries ever seen.
type DirScanner struct {
	source   string
	store    *settings.Store
	registry *action.Registry
	dirs     func(settings.Values) []string
	launch   func(path string) error

	mu      sync.Mutex
	handles map[string]action.Handle
}

// NewApps scans the configured application directories, ranking entries that
// fuzzy-match a favorite pattern ahead of the rest.
func NewApps(store *settings.Store, registry *action.Registry) *DirScanner {
	return &DirScanner{
		source:   SourceApplications,
		store:    store,
		registry: registry,
		dirs:     func(v settings.Values) []string { return v.AppDirs },
		launch:   launchDetached,
		handles:  make(map[string]action.Handle),
	}
}

// NewGames scans the configured game directories.
func NewGames(store *settings.Store, registry *action.Registry) *DirScanner {
	return &DirScanner{
		source:   SourceGames,
		store:    store,
		registry: registry,
		dirs:     func(v settings.Values) []string { return v.GameDirs },
		launch:   launchDetached,
		handles:  make(map[string]action.Handle),
	}
}

func (s *DirScanner) Name() string { return s.source }

// Items walks the configured directories at call time; the sibling list a
// user hears always reflects what is installed right now.
func (s *DirScanner) Items(ctx context.Context) ([]menu.Node, error) {
	values := s.store.Snapshot()
	entries, err := s.scan(ctx, s.dirs(values))
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	if s.source == SourceApplications {
		entries = rankFavorites(entries, values.Favorites)
	}
	nodes := make([]menu.Node, 0, len(entries))
	for _, e := range entries {
		nodes = append(nodes, menu.Leaf(e.name, s.handleFor(e)))
	}
	return nodes, nil
}

// HandleFor resolves a previously scanned entry by display name. The recent
// list uses it to launch history entries without rescanning.
func (s *DirScanner) HandleFor(name string) (action.Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for path, h := range s.handles {
		if displayName(path) == name {
			return h, true
		}
	}
	return action.Handle{}, false
}

type launchEntry struct {
	name string
	path string
}

func (s *DirScanner) scan(ctx context.Context, dirs []string) ([]launchEntry, error) {
	var entries []launchEntry
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		listing, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, de := range listing {
			if de.IsDir() {
				continue
			}
			path := filepath.Join(dir, de.Name())
			if !launchable(path, de) {
				continue
			}
			entries = append(entries, launchEntry{name: displayName(path), path: path})
		}
	}
	return entries, nil
}

func (s *DirScanner) handleFor(e launchEntry) action.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.handles[e.path]; ok {
		return h
	}
	path := e.path
	launch := s.launch
	h := s.registry.RegisterPlugin(e.name, func() error { return launch(path) })
	s.handles[e.path] = h
	return h
}

func launchable(path string, de os.DirEntry) bool {
	if _, ok := launchableExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return true
	}
	info, err := de.Info()
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

func displayName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		if _, ok := launchableExtensions[strings.ToLower(ext)]; ok {
			base = strings.TrimSuffix(base, ext)
		}
	}
	return strings.ReplaceAll(base, "_", " ")
}

// rankFavorites moves the best fuzzy match for each favorite pattern to the
// front, in pattern order, leaving the rest alphabetical.
func rankFavorites(entries []launchEntry, favorites []string) []launchEntry {
	if len(favorites) == 0 || len(entries) == 0 {
		return entries
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	picked := make(map[int]bool, len(favorites))
	ranked := make([]launchEntry, 0, len(entries))
	for _, pattern := range favorites {
		matches := fuzzy.RankFindNormalizedFold(pattern, names)
		sort.Sort(matches)
		for _, m := range matches {
			if !picked[m.OriginalIndex] {
				picked[m.OriginalIndex] = true
				ranked = append(ranked, entries[m.OriginalIndex])
				break
			}
		}
	}
	for i, e := range entries {
		if !picked[i] {
			ranked = append(ranked, e)
		}
	}
	return ranked
}

func launchDetached(path string) error {
	cmd := exec.Command(path)
	cmd.Dir = filepath.Dir(path)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Detach: the launcher must not collect or wait on the child.
	return cmd.Process.Release()
}
