package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apperr"
)

// Appointment statuses.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment types.
const (
	TypeRegular   = "regular"
	TypeEmergency = "emergency"
	TypeFollowUp  = "follow-up"
)

var validStatuses = map[string]bool{
	StatusScheduled: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

var validTypes = map[string]bool{
	TypeRegular:   true,
	TypeEmergency: true,
	TypeFollowUp:  true,
}

// Appointment links a patient and a doctor at a point in time.
//
// PatientName and DoctorName are snapshots taken at creation; they are
// not live references and are never refreshed when the underlying
// records are renamed.
type Appointment struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patientId"`
	PatientName string    `db:"patient_name" json:"patientName"`
	DoctorID    uuid.UUID `db:"doctor_id" json:"doctorId"`
	DoctorName  string    `db:"doctor_name" json:"doctorName"`
	Date        time.Time `db:"date" json:"date"`
	Time        string    `db:"time" json:"time"`
	Status      string    `db:"status" json:"status"`
	Type        string    `db:"type" json:"type"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate checks fields and applies enum defaults for blank status/type.
func (a *Appointment) Validate() error {
	if a.PatientID == uuid.Nil {
		return apperr.Validationf("patientId is required")
	}
	if a.PatientName == "" {
		return apperr.Validationf("patientName is required")
	}
	if a.DoctorID == uuid.Nil {
		return apperr.Validationf("doctorId is required")
	}
	if a.DoctorName == "" {
		return apperr.Validationf("doctorName is required")
	}
	if a.Date.IsZero() {
		return apperr.Validationf("date is required")
	}
	if a.Time == "" {
		return apperr.Validationf("time is required")
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	} else if !validStatuses[a.Status] {
		return apperr.Validationf("status %q is not one of scheduled, completed, cancelled", a.Status)
	}
	if a.Type == "" {
		a.Type = TypeRegular
	} else if !validTypes[a.Type] {
		return apperr.Validationf("type %q is not one of regular, emergency, follow-up", a.Type)
	}
	return nil
}
