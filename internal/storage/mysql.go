package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/ArdaDrcn/Cwepp/config"
	"github.com/ArdaDrcn/Cwepp/internal/entity"
)

// mysqlStore mirrors the postgres backend on database/sql. Same tables, same
// column set, JSON subsystem documents in JSON columns.
type mysqlStore struct {
	db *sql.DB
}

func newMySQLStore(cfg config.Database) (*mysqlStore, error) {
	// parseTime so nullable timestamp columns scan straight into *time.Time
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.DatabaseName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to mysql: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql connection test failed: %w", err)
	}

	poolSize := cfg.ConnPoolSize
	if poolSize <= 0 {
		poolSize = 10
	}
	db.SetMaxOpenConns(poolSize)
	db.SetMaxIdleConns(poolSize / 2)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &mysqlStore{db: db}, nil
}

func (s *mysqlStore) ListDevices(ctx context.Context, limit int) ([]entity.Device, error) {
	const q = `SELECT ip, mac, status, firmware, model, type, name, location,
		created_at_utc, updated_at_utc
		FROM devices ORDER BY id LIMIT ?`

	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	devices := []entity.Device{}
	for rows.Next() {
		var d entity.Device
		err := rows.Scan(
			&d.Ip,
			&d.Mac,
			&d.Status,
			&d.Firmware,
			&d.Model,
			&d.Type,
			&d.Name,
			&d.Location,
			&d.CreatedAtUtc,
			&d.UpdatedAtUtc,
		)
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

func (s *mysqlStore) FindGeneralByAddrs(ctx context.Context, addrs []string) ([]entity.GeneralEvent, error) {
	if len(addrs) == 0 {
		return []entity.GeneralEvent{}, nil
	}
	q := fmt.Sprintf(`SELECT device_ip, mac, emergency_call, door, sound, intercom, laser,
		cold_water_meter, hot_water_meter, electricity_meter, degree, humidity,
		created_at_utc, updated_at_utc
		FROM events WHERE TRIM(device_ip) IN (%s) ORDER BY id`, placeholders(len(addrs)))

	rows, err := s.db.QueryContext(ctx, q, addrArgs(addrs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []entity.GeneralEvent{}
	for rows.Next() {
		var (
			e                entity.GeneralEvent
			cold, hot, elec  []byte
			degree, humidity []byte
		)
		err := rows.Scan(
			&e.DeviceIP,
			&e.Mac,
			&e.EmergencyCall,
			&e.Door,
			&e.Sound,
			&e.Intercom,
			&e.Laser,
			&cold,
			&hot,
			&elec,
			&degree,
			&humidity,
			&e.CreatedAtUtc,
			&e.UpdatedAtUtc,
		)
		if err != nil {
			return nil, err
		}
		if e.ColdWaterMeter, err = decodeDoc[entity.WaterMeter](cold); err != nil {
			return nil, err
		}
		if e.HotWaterMeter, err = decodeDoc[entity.WaterMeter](hot); err != nil {
			return nil, err
		}
		if e.ElectricityMeter, err = decodeDoc[entity.ElectricityMeter](elec); err != nil {
			return nil, err
		}
		if e.Degree, err = decodeDoc[entity.AmbientSensor](degree); err != nil {
			return nil, err
		}
		if e.Humidity, err = decodeDoc[entity.AmbientSensor](humidity); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *mysqlStore) FindInterlockByAddrs(ctx context.Context, addrs []string) ([]entity.InterlockEvent, error) {
	if len(addrs) == 0 {
		return []entity.InterlockEvent{}, nil
	}
	q := fmt.Sprintf(`SELECT device_ip, mac, door1, door2, created_at_utc, updated_at_utc
		FROM interlock_events WHERE TRIM(device_ip) IN (%s) ORDER BY id`, placeholders(len(addrs)))

	rows, err := s.db.QueryContext(ctx, q, addrArgs(addrs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []entity.InterlockEvent{}
	for rows.Next() {
		var (
			e            entity.InterlockEvent
			door1, door2 []byte
		)
		err := rows.Scan(
			&e.DeviceIP,
			&e.Mac,
			&door1,
			&door2,
			&e.CreatedAtUtc,
			&e.UpdatedAtUtc,
		)
		if err != nil {
			return nil, err
		}
		if e.Door1, err = decodeDoc[entity.DoorChannel](door1); err != nil {
			return nil, err
		}
		if e.Door2, err = decodeDoc[entity.DoorChannel](door2); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *mysqlStore) Close() error {
	return s.db.Close()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func addrArgs(addrs []string) []any {
	args := make([]any, len(addrs))
	for i, a := range addrs {
		args[i] = a
	}
	return args
}
