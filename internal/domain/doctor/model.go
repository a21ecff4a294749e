package doctor

import (
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apperr"
)

// validDays are the accepted availability day values, stored lowercase.
var validDays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// Availability is one weekly time slot. Slots may overlap; no overlap
// checking is performed.
type Availability struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (a *Availability) Validate() error {
	if !validDays[a.Day] {
		return apperr.Validationf("availability day %q is not a weekday name", a.Day)
	}
	if a.StartTime == "" {
		return apperr.Validationf("availability startTime is required")
	}
	if a.EndTime == "" {
		return apperr.Validationf("availability endTime is required")
	}
	return nil
}

// Doctor is a practitioner record. Email is unique across doctors.
type Doctor struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Specialization string         `db:"specialization" json:"specialization"`
	Experience     int            `db:"experience" json:"experience"`
	Phone          string         `db:"phone" json:"phone"`
	Email          string         `db:"email" json:"email"`
	Avatar         string         `db:"avatar" json:"avatar,omitempty"`
	Availability   []Availability `db:"availability" json:"availability"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updatedAt"`
}

func (d *Doctor) Validate() error {
	if d.Name == "" {
		return apperr.Validationf("name is required")
	}
	if d.Specialization == "" {
		return apperr.Validationf("specialization is required")
	}
	if d.Experience < 0 {
		return apperr.Validationf("experience must not be negative")
	}
	if d.Phone == "" {
		return apperr.Validationf("phone is required")
	}
	if d.Email == "" {
		return apperr.Validationf("email is required")
	}
	for i := range d.Availability {
		if err := d.Availability[i].Validate(); err != nil {
			return apperr.Validationf("availability slot %d: %v", i, err)
		}
	}
	return nil
}
