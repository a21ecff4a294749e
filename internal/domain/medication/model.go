package medication

import (
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/pkg/money"
)

// Medication is one inventory item. StockStatus and ExpiryStatus are
// derived from the stored fields on every read, never persisted.
type Medication struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	Name         string      `db:"name" json:"name"`
	Category     string      `db:"category" json:"category"`
	Stock        int         `db:"stock" json:"stock"`
	Manufacturer string      `db:"manufacturer" json:"manufacturer"`
	ExpiryDate   time.Time   `db:"expiry_date" json:"expiryDate"`
	UnitPrice    money.Cents `db:"unit_price" json:"unitPrice"`
	CreatedAt    time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updatedAt"`

	StockStatus  string `db:"-" json:"stockStatus,omitempty"`
	ExpiryStatus string `db:"-" json:"expiryStatus,omitempty"`
}

func (m *Medication) Validate() error {
	if m.Name == "" {
		return apperr.Validationf("name is required")
	}
	if m.Category == "" {
		return apperr.Validationf("category is required")
	}
	if m.Stock < 0 {
		return apperr.Validationf("stock must not be negative")
	}
	if m.Manufacturer == "" {
		return apperr.Validationf("manufacturer is required")
	}
	if m.ExpiryDate.IsZero() {
		return apperr.Validationf("expiryDate is required")
	}
	if m.UnitPrice < 0 {
		return apperr.Validationf("unitPrice must not be negative")
	}
	return nil
}

// Classify fills the derived status fields from a point-in-time view.
func (m *Medication) Classify(today time.Time) {
	m.StockStatus = StockLevel(m.Stock)
	m.ExpiryStatus = ExpiryStatusAt(m.ExpiryDate, today)
}
