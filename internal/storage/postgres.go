package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/timohahaa/postgres"

	"github.com/ArdaDrcn/Cwepp/config"
	"github.com/ArdaDrcn/Cwepp/internal/entity"
)

type postgresStore struct {
	db *postgres.Postgres
}

func newPostgresStore(cfg config.Database) (*postgresStore, error) {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.DatabaseName)
	pg, err := postgres.New(url, postgres.MaxConnPoolSize(cfg.ConnPoolSize))
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	return &postgresStore{db: pg}, nil
}

func (s *postgresStore) ListDevices(ctx context.Context, limit int) ([]entity.Device, error) {
	sql, args, _ := s.db.Builder.
		Select(
			"ip",
			"mac",
			"status",
			"firmware",
			"model",
			"type",
			"name",
			"location",
			"created_at_utc",
			"updated_at_utc",
		).
		From("devices").
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()

	rows, err := s.db.ConnPool.Query(ctx, sql, args...)
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

func (s *postgresStore) FindGeneralByAddrs(ctx context.Context, addrs []string) ([]entity.GeneralEvent, error) {
	if len(addrs) == 0 {
		return []entity.GeneralEvent{}, nil
	}
	// stored identifiers may carry stray whitespace, match on the trimmed form
	sql, args, _ := s.db.Builder.
		Select(
			"device_ip",
			"mac",
			"emergency_call",
			"door",
			"sound",
			"intercom",
			"laser",
			"cold_water_meter",
			"hot_water_meter",
			"electricity_meter",
			"degree",
			"humidity",
			"created_at_utc",
			"updated_at_utc",
		).
		From("events").
		Where(sq.Eq{"TRIM(device_ip)": addrs}).
		OrderBy("id").
		ToSql()

	rows, err := s.db.ConnPool.Query(ctx, sql, args...)
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

func (s *postgresStore) FindInterlockByAddrs(ctx context.Context, addrs []string) ([]entity.InterlockEvent, error) {
	if len(addrs) == 0 {
		return []entity.InterlockEvent{}, nil
	}
	sql, args, _ := s.db.Builder.
		Select(
			"device_ip",
			"mac",
			"door1",
			"door2",
			"created_at_utc",
			"updated_at_utc",
		).
		From("interlock_events").
		Where(sq.Eq{"TRIM(device_ip)": addrs}).
		OrderBy("id").
		ToSql()

	rows, err := s.db.ConnPool.Query(ctx, sql, args...)
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

func (s *postgresStore) Close() error {
	s.db.ConnPool.Close()
	return nil
}
