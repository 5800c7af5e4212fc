package dashboard

import (
	"testing"
	"time"

	"github.com/ArdaDrcn/Cwepp/internal/entity"
)

func TestBuildPulseOverlayOnDisconnected(t *testing.T) {
	tests := []struct {
		name   string
		status *string
		want   bool
	}{
		{"exact", strp("Disconnected"), true},
		{"lower", strp("disconnected"), true},
		{"upper", strp("DISCONNECTED"), true},
		{"connected", strp("Connected"), false},
		{"absent", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := device("10.0.0.1", "", "")
			d.Status = tt.status
			// overlay must win regardless of any subsystem state
			general := map[string]entity.GeneralEvent{
				"10.0.0.1": {DeviceIP: strp("10.0.0.1"), EmergencyCall: intp(1)},
			}
			pulse := BuildPulse([]entity.Device{d}, general, nil)
			if pulse[0].Overlay != tt.want {
				t.Errorf("overlay = %v, want %v", pulse[0].Overlay, tt.want)
			}
		})
	}
}

func TestBuildPulseInterlockChannelsIndependent(t *testing.T) {
	devices := []entity.Device{device("10.0.0.1", "", "")}
	interlocks := map[string]entity.InterlockEvent{
		"10.0.0.1": {
			DeviceIP: strp("10.0.0.1"),
			Door1:    &entity.DoorChannel{Status: strp("true"), Value: strp("1928")},
			Door2:    &entity.DoorChannel{Status: strp("0"), Value: strp("77")},
		},
	}

	pulse := BuildPulse(devices, nil, interlocks)
	rec := pulse[0]

	if rec.InterlockIcon == nil || *rec.InterlockIcon != IconInterlockActive {
		t.Errorf("header icon = %v, want OR-active", rec.InterlockIcon)
	}
	if rec.Door1Icon == nil || *rec.Door1Icon != IconDoorChannelActive {
		t.Errorf("door1 icon = %v, want active", rec.Door1Icon)
	}
	if rec.Door2Icon == nil || *rec.Door2Icon != IconDoorChannelIdle {
		t.Errorf("door2 icon = %v, want idle", rec.Door2Icon)
	}
	if rec.Door1Value == nil || *rec.Door1Value != "1928" {
		t.Errorf("door1 value = %v", rec.Door1Value)
	}
	if rec.Door2Value == nil || *rec.Door2Value != "77" {
		t.Errorf("door2 value = %v", rec.Door2Value)
	}
}

func TestBuildPulseNoDataTokens(t *testing.T) {
	devices := []entity.Device{device("10.0.0.1", "", "")}

	pulse := BuildPulse(devices, nil, nil)
	rec := pulse[0]

	for name, p := range map[string]*string{
		"cold icon":      rec.ColdIcon,
		"hot icon":       rec.HotIcon,
		"elec icon":      rec.ElecIcon,
		"degree icon":    rec.DegreeIcon,
		"humidity icon":  rec.HumidityIcon,
		"interlock icon": rec.InterlockIcon,
		"door1 icon":     rec.Door1Icon,
		"door2 icon":     rec.Door2Icon,
	} {
		if p != nil {
			t.Errorf("%s = %q, want nil for a device with no data", name, *p)
		}
	}

	// the always-equipped flags still carry their idle/down token
	if rec.DoorIcon != IconDoorIdle {
		t.Errorf("door icon = %q", rec.DoorIcon)
	}
	if rec.LaserIcon != IconLaserIdle {
		t.Errorf("laser icon = %q", rec.LaserIcon)
	}
	if rec.SoundIcon != IconSoundDown {
		t.Errorf("sound icon = %q", rec.SoundIcon)
	}
	if rec.IntercomIcon != IconIntercomIdle {
		t.Errorf("intercom icon = %q", rec.IntercomIcon)
	}
	if rec.Icon != IconEmergencyIdle {
		t.Errorf("emergency icon = %q", rec.Icon)
	}
	if rec.ChangedAt != 0 {
		t.Errorf("changed_at = %d, want 0 without any timestamp", rec.ChangedAt)
	}
}

func TestBuildPulseSubsystemTokens(t *testing.T) {
	devices := []entity.Device{device("10.0.0.1", "", "")}
	general := map[string]entity.GeneralEvent{
		"10.0.0.1": {
			DeviceIP:       strp("10.0.0.1"),
			Door:           intp(1),
			Laser:          intp(0),
			Sound:          intp(3),
			Intercom:       intp(1),
			ColdWaterMeter: &entity.WaterMeter{Status: strp("1"), Consumed: strp("120")},
			Degree:         &entity.AmbientSensor{Status: strp("true"), Value: strp("21.5")},
			Humidity:       &entity.AmbientSensor{Status: strp("0"), Value: strp("40")},
		},
	}

	rec := BuildPulse(devices, general, nil)[0]

	if rec.DoorIcon != IconDoorActive {
		t.Errorf("door icon = %q", rec.DoorIcon)
	}
	if rec.LaserIcon != IconLaserIdle {
		t.Errorf("laser icon = %q", rec.LaserIcon)
	}
	if rec.SoundIcon != IconSoundLevel2 {
		t.Errorf("sound icon = %q, want level 2 for code 3", rec.SoundIcon)
	}
	if rec.IntercomIcon != IconIntercomActive {
		t.Errorf("intercom icon = %q", rec.IntercomIcon)
	}
	if rec.ColdIcon == nil || *rec.ColdIcon != IconColdWaterActive {
		t.Errorf("cold icon = %v", rec.ColdIcon)
	}
	if rec.ColdConsumed == nil || *rec.ColdConsumed != "120" {
		t.Errorf("cold consumed = %v", rec.ColdConsumed)
	}
	if rec.DegreeIcon == nil || *rec.DegreeIcon != IconDegreeActive {
		t.Errorf("degree icon = %v", rec.DegreeIcon)
	}
	if rec.DegreeValue == nil || *rec.DegreeValue != "21.5" {
		t.Errorf("degree value = %v", rec.DegreeValue)
	}
	if rec.HumidityIcon == nil || *rec.HumidityIcon != IconHumidityIdle {
		t.Errorf("humidity icon = %v", rec.HumidityIcon)
	}
}

func TestBuildPulseChangedAtTakesNewestSource(t *testing.T) {
	devTime := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	genTime := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	ilkTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	d := device("10.0.0.1", "", "")
	d.UpdatedAtUtc = timep(devTime)

	general := map[string]entity.GeneralEvent{
		"10.0.0.1": {DeviceIP: strp("10.0.0.1"), CreatedAtUtc: timep(genTime)},
	}
	interlocks := map[string]entity.InterlockEvent{
		"10.0.0.1": {DeviceIP: strp("10.0.0.1"), UpdatedAtUtc: timep(ilkTime)},
	}

	rec := BuildPulse([]entity.Device{d}, general, interlocks)[0]
	if rec.ChangedAt != ilkTime.UnixMilli() {
		t.Errorf("changed_at = %d, want interlock stamp %d", rec.ChangedAt, ilkTime.UnixMilli())
	}

	// without the interlock event the general event is newest
	rec = BuildPulse([]entity.Device{d}, general, nil)[0]
	if rec.ChangedAt != genTime.UnixMilli() {
		t.Errorf("changed_at = %d, want general stamp %d", rec.ChangedAt, genTime.UnixMilli())
	}

	// with no events at all the device's own stamp remains
	rec = BuildPulse([]entity.Device{d}, nil, nil)[0]
	if rec.ChangedAt != devTime.UnixMilli() {
		t.Errorf("changed_at = %d, want device stamp %d", rec.ChangedAt, devTime.UnixMilli())
	}
}

func TestBuildPulseOneRecordPerDevice(t *testing.T) {
	devices := []entity.Device{
		device("10.0.0.1", "", ""),
		{},
		device("10.0.0.2", "", ""),
	}
	pulse := BuildPulse(devices, nil, nil)
	if len(pulse) != 3 {
		t.Fatalf("got %d records, want 3", len(pulse))
	}
}
