package dashboard

import (
	"time"

	"github.com/ArdaDrcn/Cwepp/internal/entity"
)

func strp(s string) *string { return &s }

func intp(i int) *int { return &i }

func timep(t time.Time) *time.Time { return &t }

func device(ip, name, location string) entity.Device {
	d := entity.Device{}
	if ip != "" {
		d.Ip = strp(ip)
	}
	if name != "" {
		d.Name = strp(name)
	}
	if location != "" {
		d.Location = strp(location)
	}
	return d
}
