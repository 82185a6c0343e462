package providers

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/titoTito21/titan-menu/internal/menu"
	"github.com/titoTito21/titan-menu/internal/settings"
)

// SourceStatus is the provider name for the live status rows.
const SourceStatus = "status"

const powerSupplyRoot = "/sys/class/power_supply"

// probe produces one formatted status row.
type probe struct {
	name string
	read func(ctx context.Context) (string, error)
}

// Status serves formatted status rows: clock, battery, volume, network. Rows
// carry their value in the name, so they are announced raw, without the
// ordinal suffix.
type Status struct {
	store  *settings.Store
	now    func() time.Time
	probes []probe
}

func NewStatus(store *settings.Store) *Status {
	s := &Status{store: store, now: time.Now}
	s.probes = []probe{
		{name: "clock", read: s.readClock},
		{name: "battery", read: readBattery},
		{name: "volume", read: s.readVolume},
		{name: "network", read: readNetwork},
	}
	return s
}

func (s *Status) Name() string { return SourceStatus }

// Items runs all probes concurrently and keeps their declared order. A failed
// probe degrades to its own unavailability row instead of failing the list.
func (s *Status) Items(ctx context.Context) ([]menu.Node, error) {
	nodes := make([]menu.Node, len(s.probes))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range s.probes {
		g.Go(func() error {
			text, err := p.read(ctx)
			if err != nil {
				nodes[i] = menu.Placeholder(p.name)
				return nil
			}
			nodes[i] = menu.Node{Name: text, Kind: menu.KindAction, AnnounceRaw: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (s *Status) readClock(context.Context) (string, error) {
	return "Clock: " + s.now().Format("15:04"), nil
}

func (s *Status) readVolume(context.Context) (string, error) {
	return fmt.Sprintf("Volume: %d percent", s.store.Volume()), nil
}

func readBattery(context.Context) (string, error) {
	supplies, err := os.ReadDir(powerSupplyRoot)
	if err != nil {
		return "", err
	}
	for _, supply := range supplies {
		capPath := filepath.Join(powerSupplyRoot, supply.Name(), "capacity")
		data, err := os.ReadFile(capPath)
		if err != nil {
			continue
		}
		pct, err := strconv.Atoi(strings.TrimSpace(string(data)))
		if err != nil {
			continue
		}
		status := "unknown"
		if raw, err := os.ReadFile(filepath.Join(powerSupplyRoot, supply.Name(), "status")); err == nil {
			status = strings.ToLower(strings.TrimSpace(string(raw)))
		}
		return fmt.Sprintf("Battery: %d percent, %s", pct, status), nil
	}
	return "", fmt.Errorf("no battery found under %s", powerSupplyRoot)
}

func readNetwork(context.Context) (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", err
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		return fmt.Sprintf("Network: connected via %s", iface.Name), nil
	}
	return "Network: not connected", nil
}
