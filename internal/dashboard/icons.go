package dashboard

import "github.com/ArdaDrcn/Cwepp/internal/entity"

// Icon tokens handed to the client. They are opaque asset paths: the contract
// is only that the same logical state always yields the same token and
// different states yield different ones.
const (
	// the emergency pair is distinct from the generic binary pairs - it
	// signals a human-attention condition, not equipment state
	IconEmergencyActive = "/img/emergency-active.gif"
	IconEmergencyIdle   = "/img/emergency-idle.png"

	IconDoorActive = "/img/entry-door-active.png"
	IconDoorIdle   = "/img/entry-door-idle.png"

	IconIntercomActive = "/img/intercom-active.png"
	IconIntercomIdle   = "/img/intercom-idle.png"

	IconLaserActive = "/img/laser-active.png"
	IconLaserIdle   = "/img/laser-idle.png"

	IconSoundDown   = "/img/speaker-down.png"
	IconSoundOff    = "/img/speaker-off.png"
	IconSoundLevel1 = "/img/speaker-level-1.png"
	IconSoundLevel2 = "/img/speaker-level-2.png"
	IconSoundLevel3 = "/img/speaker-level-3.png"
	IconSoundLevel4 = "/img/speaker-level-4.png"

	IconColdWaterActive = "/img/water-meter-cold-active.png"
	IconColdWaterIdle   = "/img/water-meter-cold-idle.png"

	IconHotWaterActive = "/img/water-meter-hot-active.png"
	IconHotWaterIdle   = "/img/water-meter-hot-idle.png"

	IconElectricityActive = "/img/electricity-meter-active.png"
	IconElectricityIdle   = "/img/electricity-meter-idle.png"

	IconDegreeActive = "/img/degree-active.png"
	IconDegreeIdle   = "/img/degree-idle.png"

	IconHumidityActive = "/img/humidity-active.png"
	IconHumidityIdle   = "/img/humidity-idle.png"

	IconInterlockActive = "/img/interlock-active.png"
	IconInterlockIdle   = "/img/interlock-idle.png"

	IconDoorChannelActive = "/img/interlock-door-active.png"
	IconDoorChannelIdle   = "/img/interlock-door-idle.png"
)

func pick(s State, active, idle string) string {
	if s == Active {
		return active
	}
	return idle
}

func emergencyIcon(evt *entity.GeneralEvent) string {
	if evt == nil {
		return IconEmergencyIdle
	}
	return pick(ClassifyFlag(evt.EmergencyCall), IconEmergencyActive, IconEmergencyIdle)
}

func soundIcon(level SoundLevel) string {
	switch level {
	case SoundOff:
		return IconSoundOff
	case SoundLevel1:
		return IconSoundLevel1
	case SoundLevel2:
		return IconSoundLevel2
	case SoundLevel3:
		return IconSoundLevel3
	case SoundLevel4:
		return IconSoundLevel4
	default:
		return IconSoundDown
	}
}
