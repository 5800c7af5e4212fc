package entity

import "time"

// GeneralEvent is one periodic report from a device. Every subsystem is
// optional: a nil pointer means the device did not report it (or is not
// equipped with it), which must stay distinguishable from "reported and
// inactive".
type GeneralEvent struct {
	DeviceIP *string `json:"device_ip"`
	Mac      *string `json:"mac"`

	// 0/1 flags
	EmergencyCall *int `json:"emergencycall"`
	Door          *int `json:"door"`
	Intercom      *int `json:"intercom"`
	Laser         *int `json:"laser"`

	// 0..5, 0 means the audio link is down, not "off"
	Sound *int `json:"sound"`

	ColdWaterMeter   *WaterMeter       `json:"coldwatermeter"`
	HotWaterMeter    *WaterMeter       `json:"hotwatermeter"`
	ElectricityMeter *ElectricityMeter `json:"electricitymeter"`

	Degree   *AmbientSensor `json:"degree"`
	Humidity *AmbientSensor `json:"humidity"`

	CreatedAtUtc *time.Time `json:"created_at_utc"`
	UpdatedAtUtc *time.Time `json:"updated_at_utc"`
}

// WaterMeter readings arrive as strings, the board never parses them as
// numbers.
type WaterMeter struct {
	Status   *string `json:"status"` // "0" | "1" | "true"/"false"
	Uploaded *string `json:"uploaded"`
	Consumed *string `json:"consumed"`
}

type ElectricityMeter struct {
	Status      *string `json:"status"`
	Consumption *string `json:"consumption"`
}

// AmbientSensor covers the temperature and humidity probes, both carry a raw
// status plus an opaque value string.
type AmbientSensor struct {
	Status *string `json:"status"`
	Value  *string `json:"value"`
}

// InterlockEvent is one report from a dual-door interlock: exactly two
// channels, either may still be missing on a partial report.
type InterlockEvent struct {
	DeviceIP *string `json:"device_ip"`
	Mac      *string `json:"mac"`

	Door1 *DoorChannel `json:"door1"`
	Door2 *DoorChannel `json:"door2"`

	CreatedAtUtc *time.Time `json:"created_at_utc"`
	UpdatedAtUtc *time.Time `json:"updated_at_utc"`
}

type DoorChannel struct {
	Status *string `json:"status"`
	Value  *string `json:"value"`
}
