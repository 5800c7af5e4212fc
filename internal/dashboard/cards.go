package dashboard

import (
	"fmt"
	"strings"

	"github.com/ArdaDrcn/Cwepp/internal/entity"
)

type CardKind string

const (
	CardDevice      CardKind = "device"
	CardColdWater   CardKind = "cold"
	CardHotWater    CardKind = "hot"
	CardElectricity CardKind = "elec"
	CardInterlock   CardKind = "interlock"
)

// Card is one tile on the board. Cards are rebuilt from scratch on every
// request and never stored.
type Card struct {
	Key  string   `json:"card_key"` // "addr|kind", e.g. "10.0.0.1|cold"
	Kind CardKind `json:"kind"`

	Device          entity.Device          `json:"device"`
	LatestEvent     *entity.GeneralEvent   `json:"latest_event,omitempty"`
	LatestInterlock *entity.InterlockEvent `json:"latest_interlock,omitempty"`

	Title string `json:"title"`
	Icon  string `json:"icon"`
}

const unnamedDevice = "(unnamed device)"

// BuildCards turns the device list plus the resolved latest events into the
// ordered card sequence. Per device: the device card always, then cold, hot
// and electricity meter cards for whichever subsystems the latest event
// carries, then an interlock card when an interlock event resolved. Missing
// data never drops a device and never produces a partial card.
func BuildCards(devices []entity.Device, general map[string]entity.GeneralEvent, interlocks map[string]entity.InterlockEvent) []Card {
	cards := make([]Card, 0, len(devices))

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

		cards = append(cards, Card{
			Key:         addr + "|" + string(CardDevice),
			Kind:        CardDevice,
			Device:      d,
			LatestEvent: evt,
			Title:       deviceTitle(d),
			Icon:        emergencyIcon(evt),
		})

		if evt != nil && evt.ColdWaterMeter != nil {
			cards = append(cards, Card{
				Key:         addr + "|" + string(CardColdWater),
				Kind:        CardColdWater,
				Device:      d,
				LatestEvent: evt,
				Title:       subTitle("Cold Water Meter", d.Location),
				Icon:        pick(Classify(evt.ColdWaterMeter.Status), IconColdWaterActive, IconColdWaterIdle),
			})
		}

		if evt != nil && evt.HotWaterMeter != nil {
			cards = append(cards, Card{
				Key:         addr + "|" + string(CardHotWater),
				Kind:        CardHotWater,
				Device:      d,
				LatestEvent: evt,
				Title:       subTitle("Hot Water Meter", d.Location),
				Icon:        pick(Classify(evt.HotWaterMeter.Status), IconHotWaterActive, IconHotWaterIdle),
			})
		}

		// electricity gets its own card, placed between hot water and interlock
		if evt != nil && evt.ElectricityMeter != nil {
			cards = append(cards, Card{
				Key:         addr + "|" + string(CardElectricity),
				Kind:        CardElectricity,
				Device:      d,
				LatestEvent: evt,
				Title:       subTitle("Electricity Meter", d.Location),
				Icon:        pick(Classify(evt.ElectricityMeter.Status), IconElectricityActive, IconElectricityIdle),
			})
		}

		if ilk != nil {
			cards = append(cards, Card{
				Key:             addr + "|" + string(CardInterlock),
				Kind:            CardInterlock,
				Device:          d,
				LatestInterlock: ilk,
				Title:           subTitle("Door Interlock", d.Location),
				Icon:            interlockIcon(ilk),
			})
		}
	}
	return cards
}

// the header icon shows "either door open", the pulse payload still carries
// both channels separately
func interlockIcon(ilk *entity.InterlockEvent) string {
	if ilk == nil {
		return IconInterlockIdle
	}
	var d1, d2 *string
	if ilk.Door1 != nil {
		d1 = ilk.Door1.Status
	}
	if ilk.Door2 != nil {
		d2 = ilk.Door2.Status
	}
	if Classify(d1) == Active || Classify(d2) == Active {
		return IconInterlockActive
	}
	return IconInterlockIdle
}

func deviceTitle(d entity.Device) string {
	name := unnamedDevice
	if d.Name != nil && strings.TrimSpace(*d.Name) != "" {
		name = *d.Name
	}
	if loc := trimmed(d.Location); loc != "" {
		return fmt.Sprintf("%s - %s", name, loc)
	}
	return name
}

func subTitle(prefix string, location *string) string {
	if loc := trimmed(location); loc != "" {
		return fmt.Sprintf("%s - %s", prefix, loc)
	}
	return prefix
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
