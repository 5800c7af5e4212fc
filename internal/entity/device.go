package entity

import "time"

// Device is a monitored unit as the store keeps it. Every column except the
// row id may be missing, so all fields are pointers - nil means the store
// has no value, which is not the same as an empty string.
type Device struct {
	Ip       *string `json:"ip"`
	Mac      *string `json:"mac"`
	Status   *string `json:"status"` // free text, "Disconnected" is the one value the board reacts to
	Firmware *string `json:"firmware"`
	Model    *string `json:"model"`
	Type     *string `json:"type"`
	Name     *string `json:"name"`
	Location *string `json:"location"`

	CreatedAtUtc *time.Time `json:"created_at_utc"`
	UpdatedAtUtc *time.Time `json:"updated_at_utc"`
}
