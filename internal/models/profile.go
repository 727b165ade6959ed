package models

import "time"

// Profile represents a skater account. OwnerID is the subject of the
// bearer token issued by the hosted auth provider.
type Profile struct {
	OwnerID         string    `json:"ownerId"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	SkatingLevel    string    `json:"skatingLevel,omitempty"`
	Club            string    `json:"club,omitempty"`
	Coach           string    `json:"coach,omitempty"`
	TimeZone        string    `json:"timeZone,omitempty"`
	ReminderEnabled bool      `json:"reminderEnabled"`
	ReminderTime    string    `json:"reminderTime,omitempty"` // HH:MM, local
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Location returns the profile's time zone, falling back to UTC
func (p *Profile) Location() *time.Location {
	if p == nil || p.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ReminderDue reports whether the reminder time has passed at now
// in the profile's time zone
func (p *Profile) ReminderDue(now time.Time) bool {
	if p == nil || !p.ReminderEnabled || p.ReminderTime == "" {
		return false
	}
	at, err := time.Parse("15:04", p.ReminderTime)
	if err != nil {
		return false
	}
	local := now.In(p.Location())
	return local.Hour()*60+local.Minute() >= at.Hour()*60+at.Minute()
}
