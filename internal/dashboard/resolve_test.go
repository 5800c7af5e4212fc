package dashboard

import (
	"testing"
	"time"

	"github.com/ArdaDrcn/Cwepp/internal/entity"
)

var (
	t1 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 = time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	t3 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func generalEvent(ip string, created, updated *time.Time, emergency int) entity.GeneralEvent {
	e := entity.GeneralEvent{
		CreatedAtUtc:  created,
		UpdatedAtUtc:  updated,
		EmergencyCall: intp(emergency),
	}
	if ip != "" {
		e.DeviceIP = strp(ip)
	}
	return e
}

func TestLatestByAddrPicksNewest(t *testing.T) {
	events := []entity.GeneralEvent{
		generalEvent("10.0.0.1", nil, timep(t2), 1),
		generalEvent("10.0.0.1", nil, timep(t1), 0),
		generalEvent("10.0.0.2", nil, timep(t1), 0),
		generalEvent("10.0.0.2", nil, timep(t3), 1),
	}
	latest := LatestByAddr(events, generalAddr, generalStamp)

	if len(latest) != 2 {
		t.Fatalf("got %d entries, want 2", len(latest))
	}
	if ev := latest["10.0.0.1"]; *ev.UpdatedAtUtc != t2 {
		t.Errorf("10.0.0.1 resolved to %v, want %v", *ev.UpdatedAtUtc, t2)
	}
	if ev := latest["10.0.0.2"]; *ev.UpdatedAtUtc != t3 {
		t.Errorf("10.0.0.2 resolved to %v, want %v", *ev.UpdatedAtUtc, t3)
	}
}

func TestLatestByAddrUpdatedBeatsCreated(t *testing.T) {
	// second event was created later but its updated-at is older, the
	// effective stamp is updated-at when present
	events := []entity.GeneralEvent{
		generalEvent("10.0.0.1", timep(t1), timep(t3), 1),
		generalEvent("10.0.0.1", timep(t2), timep(t2), 0),
	}
	latest := LatestByAddr(events, generalAddr, generalStamp)
	if ev := latest["10.0.0.1"]; *ev.EmergencyCall != 1 {
		t.Errorf("resolved the wrong event: %+v", ev)
	}
}

func TestLatestByAddrFallsBackToCreated(t *testing.T) {
	events := []entity.GeneralEvent{
		generalEvent("10.0.0.1", timep(t3), nil, 1),
		generalEvent("10.0.0.1", timep(t1), timep(t2), 0),
	}
	latest := LatestByAddr(events, generalAddr, generalStamp)
	if ev := latest["10.0.0.1"]; *ev.EmergencyCall != 1 {
		t.Errorf("created-at fallback not applied: %+v", ev)
	}
}

func TestLatestByAddrTieGoesToLastSeen(t *testing.T) {
	events := []entity.GeneralEvent{
		generalEvent("10.0.0.1", nil, timep(t1), 0),
		generalEvent("10.0.0.1", nil, timep(t1), 1),
	}
	latest := LatestByAddr(events, generalAddr, generalStamp)
	if ev := latest["10.0.0.1"]; *ev.EmergencyCall != 1 {
		t.Errorf("tie should keep the later input event, got %+v", ev)
	}

	// events without any timestamp tie at zero time, same rule applies
	events = []entity.GeneralEvent{
		generalEvent("10.0.0.1", nil, nil, 0),
		generalEvent("10.0.0.1", nil, nil, 1),
	}
	latest = LatestByAddr(events, generalAddr, generalStamp)
	if ev := latest["10.0.0.1"]; *ev.EmergencyCall != 1 {
		t.Errorf("zero-stamp tie should keep the later input event, got %+v", ev)
	}
}

func TestLatestByAddrNormalizesAndDropsEmptyKeys(t *testing.T) {
	events := []entity.GeneralEvent{
		generalEvent("  10.0.0.1  ", nil, timep(t1), 1),
		generalEvent("", nil, timep(t3), 0),
		generalEvent("   ", nil, timep(t3), 0),
		{CreatedAtUtc: timep(t3)}, // nil identifier
	}
	latest := LatestByAddr(events, generalAddr, generalStamp)
	if len(latest) != 1 {
		t.Fatalf("got %d entries, want 1", len(latest))
	}
	if _, ok := latest["10.0.0.1"]; !ok {
		t.Errorf("trimmed key missing: %v", latest)
	}
}

func TestLatestByAddrEmptyInput(t *testing.T) {
	latest := LatestByAddr(nil, generalAddr, generalStamp)
	if len(latest) != 0 {
		t.Errorf("empty input must yield an empty mapping, got %v", latest)
	}
}

func TestEffectiveStamp(t *testing.T) {
	if got := EffectiveStamp(timep(t2), timep(t1)); got != t2 {
		t.Errorf("got %v, want updated-at %v", got, t2)
	}
	if got := EffectiveStamp(nil, timep(t1)); got != t1 {
		t.Errorf("got %v, want created-at %v", got, t1)
	}
	if got := EffectiveStamp(nil, nil); !got.IsZero() {
		t.Errorf("got %v, want zero time", got)
	}
}
