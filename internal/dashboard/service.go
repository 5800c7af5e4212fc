package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/ArdaDrcn/Cwepp/internal/entity"
	"github.com/ArdaDrcn/Cwepp/internal/storage"
)

// DefaultDeviceLimit caps how many devices one board serves. The cap keeps
// an oversized fleet from turning every poll into a full table walk.
const DefaultDeviceLimit = 200

// Service runs the whole pipeline for one request: fetch the capped device
// list, fetch both event streams filtered to those devices, reduce each
// stream to its latest event per device, and shape the output. It keeps no
// state between requests, so concurrent polls never share anything mutable.
type Service struct {
	devices    storage.DeviceSource
	general    storage.GeneralEventSource
	interlocks storage.InterlockEventSource

	mu          sync.RWMutex
	deviceLimit int
}

func NewService(devices storage.DeviceSource, general storage.GeneralEventSource, interlocks storage.InterlockEventSource, deviceLimit int) *Service {
	if deviceLimit <= 0 {
		deviceLimit = DefaultDeviceLimit
	}
	return &Service{
		devices:     devices,
		general:     general,
		interlocks:  interlocks,
		deviceLimit: deviceLimit,
	}
}

// SetDeviceLimit applies a reloaded config value. Zero or negative restores
// the default.
func (s *Service) SetDeviceLimit(n int) {
	if n <= 0 {
		n = DefaultDeviceLimit
	}
	s.mu.Lock()
	s.deviceLimit = n
	s.mu.Unlock()
}

func (s *Service) limit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deviceLimit
}

// Cards returns the full board model for an initial page build.
func (s *Service) Cards(ctx context.Context) ([]Card, error) {
	devices, general, interlocks, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCards(devices, general, interlocks), nil
}

// Pulse returns the compact per-device payload the client polls for.
func (s *Service) Pulse(ctx context.Context) ([]PulseRecord, error) {
	devices, general, interlocks, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return BuildPulse(devices, general, interlocks), nil
}

// snapshot is the shared fetch-and-resolve step. A failing fetch fails the
// whole request - the board never renders from a half-fetched state.
func (s *Service) snapshot(ctx context.Context) ([]entity.Device, map[string]entity.GeneralEvent, map[string]entity.InterlockEvent, error) {
	devices, err := s.devices.ListDevices(ctx, s.limit())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("listing devices: %w", err)
	}

	addrs := collectAddrs(devices)

	generalEvents, err := s.general.FindGeneralByAddrs(ctx, addrs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetching general events: %w", err)
	}
	interlockEvents, err := s.interlocks.FindInterlockByAddrs(ctx, addrs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetching interlock events: %w", err)
	}

	general := LatestByAddr(generalEvents, generalAddr, generalStamp)
	interlocks := LatestByAddr(interlockEvents, interlockAddr, interlockStamp)
	return devices, general, interlocks, nil
}

// collectAddrs gathers the distinct normalized identifiers of the device
// list; devices without one are still rendered but cannot join any event.
func collectAddrs(devices []entity.Device) []string {
	seen := make(map[string]struct{}, len(devices))
	addrs := make([]string, 0, len(devices))
	for _, d := range devices {
		addr := NormalizeAddr(d.Ip)
		if addr == "" {
			continue
		}
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		addrs = append(addrs, addr)
	}
	return addrs
}
