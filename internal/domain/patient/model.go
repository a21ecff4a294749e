package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apperr"
)

// Patient is a registered patient record. Create/read only in current scope.
type Patient struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Age              int       `db:"age" json:"age"`
	Gender           string    `db:"gender" json:"gender"`
	BloodType        string    `db:"blood_type" json:"bloodType"`
	Phone            string    `db:"phone" json:"phone"`
	Email            string    `db:"email" json:"email"`
	Address          string    `db:"address" json:"address"`
	RegistrationDate time.Time `db:"registration_date" json:"registrationDate"`
	EmergencyContact string    `db:"emergency_contact" json:"emergencyContact"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate enforces field presence and range constraints before any write.
func (p *Patient) Validate() error {
	if p.Name == "" {
		return apperr.Validationf("name is required")
	}
	if p.Age < 0 {
		return apperr.Validationf("age must not be negative")
	}
	if p.Gender == "" {
		return apperr.Validationf("gender is required")
	}
	if p.Phone == "" {
		return apperr.Validationf("phone is required")
	}
	if p.Email == "" {
		return apperr.Validationf("email is required")
	}
	if p.RegistrationDate.IsZero() {
		return apperr.Validationf("registrationDate is required")
	}
	return nil
}
