package dashboard

import (
	"time"

	"github.com/ArdaDrcn/Cwepp/internal/entity"
)

// EffectiveStamp picks the timestamp an event (or a device row) is compared
// by: updated-at when present, created-at otherwise, zero time when neither
// was recorded.
func EffectiveStamp(updatedAtUtc, createdAtUtc *time.Time) time.Time {
	if updatedAtUtc != nil {
		return *updatedAtUtc
	}
	if createdAtUtc != nil {
		return *createdAtUtc
	}
	return time.Time{}
}

// LatestByAddr reduces an event stream to the single most recent event per
// normalized device identifier. Events whose identifier normalizes to empty
// cannot be joined to anything and are dropped. On equal effective stamps the
// event seen later in input order wins - the input comes from a stable store
// query order, so the pick does not flicker between polls.
func LatestByAddr[E any](events []E, addrOf func(E) string, stampOf func(E) time.Time) map[string]E {
	latest := make(map[string]E, len(events))
	stamps := make(map[string]time.Time, len(events))

	for _, ev := range events {
		addr := addrOf(ev)
		if addr == "" {
			continue
		}
		stamp := stampOf(ev)
		if prev, ok := stamps[addr]; ok && stamp.Before(prev) {
			continue
		}
		latest[addr] = ev
		stamps[addr] = stamp
	}
	return latest
}

func generalAddr(e entity.GeneralEvent) string { return NormalizeAddr(e.DeviceIP) }

func interlockAddr(e entity.InterlockEvent) string { return NormalizeAddr(e.DeviceIP) }

func generalStamp(e entity.GeneralEvent) time.Time {
	return EffectiveStamp(e.UpdatedAtUtc, e.CreatedAtUtc)
}

func interlockStamp(e entity.InterlockEvent) time.Time {
	return EffectiveStamp(e.UpdatedAtUtc, e.CreatedAtUtc)
}
