package billing

import (
	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/pkg/money"
)

// Compute fills the derived monetary fields of a validated bill: each
// line's amount, the total, and the status. The caller-supplied
// paidAmount is kept as the initial payment and must not exceed the
// computed total.
func Compute(b *Bill) error {
	var total money.Cents
	for i := range b.Services {
		s := &b.Services[i]
		s.Amount = s.UnitPrice.Mul(s.Quantity)
		total += s.Amount
	}
	b.TotalAmount = total
	if b.PaidAmount > total {
		return apperr.Validationf("paidAmount %s exceeds totalAmount %s", b.PaidAmount, b.TotalAmount)
	}
	b.Status = DeriveStatus(b.PaidAmount, b.TotalAmount)
	return nil
}

// VerifyDerived recomputes the derived fields of a stored bill and
// reports any mismatch as an internal consistency error. Stored data is
// never auto-corrected.
func VerifyDerived(b *Bill) error {
	var total money.Cents
	for i := range b.Services {
		s := b.Services[i]
		if s.Amount != s.UnitPrice.Mul(s.Quantity) {
			return apperr.Internalf("bill %s: service %d amount %s does not match quantity*unitPrice", b.ID, i, s.Amount)
		}
		total += s.Amount
	}
	if b.TotalAmount != total {
		return apperr.Internalf("bill %s: totalAmount %s does not match sum of services %s", b.ID, b.TotalAmount, total)
	}
	if b.PaidAmount < 0 || b.PaidAmount > b.TotalAmount {
		return apperr.Internalf("bill %s: paidAmount %s out of range", b.ID, b.PaidAmount)
	}
	if got := DeriveStatus(b.PaidAmount, b.TotalAmount); b.Status != got {
		return apperr.Internalf("bill %s: status %q does not match derived %q", b.ID, b.Status, got)
	}
	return nil
}
