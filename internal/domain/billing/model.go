package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/pkg/money"
)

// Bill statuses. Status is always derived from paidAmount vs totalAmount,
// never accepted from a caller.
const (
	StatusUnpaid  = "unpaid"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)

// Service line categories.
const (
	CategoryConsultation = "consultation"
	CategoryLab          = "lab"
	CategoryMedication   = "medication"
)

var validCategories = map[string]bool{
	CategoryConsultation: true,
	CategoryLab:          true,
	CategoryMedication:   true,
}

// ServiceLine is one billed item. Amount is computed by the engine as
// quantity * unitPrice; a caller-supplied value is overwritten.
type ServiceLine struct {
	Description string      `json:"description"`
	Quantity    int64       `json:"quantity"`
	UnitPrice   money.Cents `json:"unitPrice"`
	Amount      money.Cents `json:"amount"`
	Category    string      `json:"category"`
}

func (s *ServiceLine) Validate() error {
	if s.Description == "" {
		return apperr.Validationf("service description is required")
	}
	if s.Quantity < 1 {
		return apperr.Validationf("service quantity must be at least 1")
	}
	if s.UnitPrice < 0 {
		return apperr.Validationf("service unitPrice must not be negative")
	}
	if !validCategories[s.Category] {
		return apperr.Validationf("service category %q is not one of consultation, lab, medication", s.Category)
	}
	return nil
}

// Bill is an invoice against a patient. PatientName is a snapshot taken
// at creation; it is not refreshed when the patient record is renamed.
// Bills are never deleted; payments only ever increase PaidAmount.
type Bill struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	PatientID   uuid.UUID     `db:"patient_id" json:"patientId"`
	PatientName string        `db:"patient_name" json:"patientName"`
	Date        time.Time     `db:"date" json:"date"`
	DueDate     time.Time     `db:"due_date" json:"dueDate"`
	Services    []ServiceLine `db:"services" json:"services"`
	TotalAmount money.Cents   `db:"total_amount" json:"totalAmount"`
	PaidAmount  money.Cents   `db:"paid_amount" json:"paidAmount"`
	Status      string        `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updatedAt"`
}

// ValidateInput checks the caller-supplied fields of a new bill. Derived
// fields (per-line amounts, totalAmount, status) are handled by Compute.
func (b *Bill) ValidateInput() error {
	if b.PatientID == uuid.Nil {
		return apperr.Validationf("patientId is required")
	}
	if b.PatientName == "" {
		return apperr.Validationf("patientName is required")
	}
	if b.Date.IsZero() {
		return apperr.Validationf("date is required")
	}
	if b.DueDate.IsZero() {
		return apperr.Validationf("dueDate is required")
	}
	if len(b.Services) == 0 {
		return apperr.Validationf("services must be a non-empty list")
	}
	for i := range b.Services {
		if err := b.Services[i].Validate(); err != nil {
			return apperr.Validationf("service %d: %v", i, err)
		}
	}
	if b.PaidAmount < 0 {
		return apperr.Validationf("paidAmount must not be negative")
	}
	return nil
}

// DeriveStatus maps a paid/total pair onto the status enum.
func DeriveStatus(paid, total money.Cents) string {
	switch {
	case paid == total:
		return StatusPaid
	case paid == 0:
		return StatusUnpaid
	default:
		return StatusPartial
	}
}
