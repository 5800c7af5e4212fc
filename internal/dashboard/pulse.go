package dashboard

import (
	"strings"

	"github.com/ArdaDrcn/Cwepp/internal/entity"
)

// PulseRecord is the compact per-device polling payload. The client compares
// ChangedAt against the previous poll and only re-renders devices whose value
// moved. Nil icon/value fields mean "no data" for that subsystem and marshal
// as JSON null; the always-equipped flags (door, laser, sound, intercom)
// always carry a token, defaulting to their idle/down form.
type PulseRecord struct {
	Addr      string `json:"addr"`
	ChangedAt int64  `json:"changed_at"` // unix milliseconds, 0 when nothing has a timestamp
	Icon      string `json:"icon"`       // emergency state
	Overlay   bool   `json:"overlay"`    // device is disconnected, client dims everything

	ColdIcon     *string `json:"cold_icon"`
	ColdConsumed *string `json:"cold_consumed"`

	HotIcon     *string `json:"hot_icon"`
	HotConsumed *string `json:"hot_consumed"`

	ElecIcon        *string `json:"elec_icon"`
	ElecConsumption *string `json:"elec_consumption"`

	DegreeIcon  *string `json:"degree_icon"`
	DegreeValue *string `json:"degree_value"`

	HumidityIcon  *string `json:"humidity_icon"`
	HumidityValue *string `json:"humidity_value"`

	DoorIcon     string `json:"door_icon"`
	LaserIcon    string `json:"laser_icon"`
	SoundIcon    string `json:"sound_icon"`
	IntercomIcon string `json:"intercom_icon"`

	InterlockIcon *string `json:"interlock_icon"`
	Door1Icon     *string `json:"door1_icon"`
	Door1Value    *string `json:"door1_value"`
	Door2Icon     *string `json:"door2_icon"`
	Door2Value    *string `json:"door2_value"`
}

// BuildPulse produces one record per device. Each record depends only on that
// device's own rows, so a bad record for one device can never bend another.
func BuildPulse(devices []entity.Device, general map[string]entity.GeneralEvent, interlocks map[string]entity.InterlockEvent) []PulseRecord {
	records := make([]PulseRecord, 0, len(devices))
	for _, d := range devices {
		addr := NormalizeAddr(d.Ip)

		var evt *entity.GeneralEvent
		if e, ok := general[addr]; ok {
			evt = &e
		}
		var ilk *entity.InterlockEvent
		if e, ok := interlocks[addr]; ok {
			ilk = &e
		}
		records = append(records, pulseRecord(addr, d, evt, ilk))
	}
	return records
}

func pulseRecord(addr string, d entity.Device, evt *entity.GeneralEvent, ilk *entity.InterlockEvent) PulseRecord {
	rec := PulseRecord{
		Addr:      addr,
		ChangedAt: changedAt(d, evt, ilk),
		Icon:      emergencyIcon(evt),
		Overlay:   d.Status != nil && strings.EqualFold(*d.Status, "Disconnected"),
	}

	if evt != nil {
		if m := evt.ColdWaterMeter; m != nil {
			rec.ColdIcon = ptr(pick(Classify(m.Status), IconColdWaterActive, IconColdWaterIdle))
			rec.ColdConsumed = m.Consumed
		}
		if m := evt.HotWaterMeter; m != nil {
			rec.HotIcon = ptr(pick(Classify(m.Status), IconHotWaterActive, IconHotWaterIdle))
			rec.HotConsumed = m.Consumed
		}
		if m := evt.ElectricityMeter; m != nil {
			rec.ElecIcon = ptr(pick(Classify(m.Status), IconElectricityActive, IconElectricityIdle))
			rec.ElecConsumption = m.Consumption
		}
		if s := evt.Degree; s != nil {
			rec.DegreeIcon = ptr(pick(Classify(s.Status), IconDegreeActive, IconDegreeIdle))
			rec.DegreeValue = s.Value
		}
		if s := evt.Humidity; s != nil {
			rec.HumidityIcon = ptr(pick(Classify(s.Status), IconHumidityActive, IconHumidityIdle))
			rec.HumidityValue = s.Value
		}
	}

	// flag subsystems always report a token, a missing event reads as idle
	var door, laser, sound, intercom *int
	if evt != nil {
		door, laser, sound, intercom = evt.Door, evt.Laser, evt.Sound, evt.Intercom
	}
	rec.DoorIcon = pick(ClassifyFlag(door), IconDoorActive, IconDoorIdle)
	rec.LaserIcon = pick(ClassifyFlag(laser), IconLaserActive, IconLaserIdle)
	rec.SoundIcon = soundIcon(ClassifySound(sound))
	rec.IntercomIcon = pick(ClassifyFlag(intercom), IconIntercomActive, IconIntercomIdle)

	if ilk != nil {
		rec.InterlockIcon = ptr(interlockIcon(ilk))
		if c := ilk.Door1; c != nil {
			rec.Door1Icon = ptr(pick(Classify(c.Status), IconDoorChannelActive, IconDoorChannelIdle))
			rec.Door1Value = c.Value
		}
		if c := ilk.Door2; c != nil {
			rec.Door2Icon = ptr(pick(Classify(c.Status), IconDoorChannelActive, IconDoorChannelIdle))
			rec.Door2Value = c.Value
		}
	}
	return rec
}

// changedAt is the per-device last-changed instant: the newest effective
// stamp across the latest general event, the latest interlock event and the
// device row itself.
func changedAt(d entity.Device, evt *entity.GeneralEvent, ilk *entity.InterlockEvent) int64 {
	stamp := EffectiveStamp(d.UpdatedAtUtc, d.CreatedAtUtc)
	if evt != nil {
		if s := EffectiveStamp(evt.UpdatedAtUtc, evt.CreatedAtUtc); s.After(stamp) {
			stamp = s
		}
	}
	if ilk != nil {
		if s := EffectiveStamp(ilk.UpdatedAtUtc, ilk.CreatedAtUtc); s.After(stamp) {
			stamp = s
		}
	}
	if stamp.IsZero() {
		return 0
	}
	return stamp.UTC().UnixMilli()
}

func ptr(s string) *string { return &s }
