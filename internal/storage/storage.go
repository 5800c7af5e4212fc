package storage

import (
	"context"
	"fmt"

	"github.com/ArdaDrcn/Cwepp/config"
	"github.com/ArdaDrcn/Cwepp/internal/entity"
)

// The board only ever reads. Each source returns plain slices; reducing the
// event streams to "latest per device" happens in the dashboard package, not
// here.
type (
	DeviceSource interface {
		// ListDevices returns at most limit devices in a stable order.
		ListDevices(ctx context.Context, limit int) ([]entity.Device, error)
	}

	GeneralEventSource interface {
		// FindGeneralByAddrs returns every general event whose device
		// identifier is in addrs, in a stable order.
		FindGeneralByAddrs(ctx context.Context, addrs []string) ([]entity.GeneralEvent, error)
	}

	InterlockEventSource interface {
		FindInterlockByAddrs(ctx context.Context, addrs []string) ([]entity.InterlockEvent, error)
	}

	Store interface {
		DeviceSource
		GeneralEventSource
		InterlockEventSource
		Close() error
	}
)

// New picks the backend from the database config section.
func New(cfg config.Database) (Store, error) {
	switch cfg.Type {
	case "postgres", "":
		return newPostgresStore(cfg)
	case "mysql":
		return newMySQLStore(cfg)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}
