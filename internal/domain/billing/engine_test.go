package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/pkg/money"
)

func inputBill(paid money.Cents, services ...ServiceLine) *Bill {
	return &Bill{
		PatientID:   uuid.New(),
		PatientName: "Jane Roe",
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Services:    services,
		PaidAmount:  paid,
	}
}

func line(qty int64, price money.Cents) ServiceLine {
	return ServiceLine{
		Description: "item",
		Quantity:    qty,
		UnitPrice:   price,
		Category:    CategoryConsultation,
	}
}

func TestComputeTotals(t *testing.T) {
	b := inputBill(0,
		line(2, money.Cents(2550)), // 51.00
		line(1, money.Cents(999)),  // 9.99
		line(3, money.Cents(100)),  // 3.00
	)
	if err := b.ValidateInput(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Compute(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Services[0].Amount != 5100 {
		t.Errorf("service 0 amount = %d, want 5100", b.Services[0].Amount)
	}
	if b.TotalAmount != 6399 {
		t.Errorf("totalAmount = %d, want 6399", b.TotalAmount)
	}
	if b.Status != StatusUnpaid {
		t.Errorf("status = %q, want %q", b.Status, StatusUnpaid)
	}
}

func TestComputeInitialPayment(t *testing.T) {
	tests := []struct {
		name       string
		paid       money.Cents
		wantStatus string
	}{
		{"zero payment", 0, StatusUnpaid},
		{"partial payment", 1000, StatusPartial},
		{"full payment", 5100, StatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := inputBill(tt.paid, line(2, money.Cents(2550)))
			if err := Compute(b); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", b.Status, tt.wantStatus)
			}
		})
	}
}

func TestComputeRejectsOverpayment(t *testing.T) {
	b := inputBill(5101, line(2, money.Cents(2550)))
	err := Compute(b)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Bill)
	}{
		{"missing patient id", func(b *Bill) { b.PatientID = uuid.Nil }},
		{"missing patient name", func(b *Bill) { b.PatientName = "" }},
		{"missing date", func(b *Bill) { b.Date = time.Time{} }},
		{"missing due date", func(b *Bill) { b.DueDate = time.Time{} }},
		{"empty services", func(b *Bill) { b.Services = nil }},
		{"zero quantity", func(b *Bill) { b.Services[0].Quantity = 0 }},
		{"negative unit price", func(b *Bill) { b.Services[0].UnitPrice = -1 }},
		{"bad category", func(b *Bill) { b.Services[0].Category = "surgery" }},
		{"blank description", func(b *Bill) { b.Services[0].Description = "" }},
		{"negative paid amount", func(b *Bill) { b.PaidAmount = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := inputBill(0, line(1, money.Cents(100)))
			tt.mutate(b)
			if err := b.ValidateInput(); !apperr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		paid, total money.Cents
		want        string
	}{
		{0, 100, StatusUnpaid},
		{50, 100, StatusPartial},
		{100, 100, StatusPaid},
		{0, 0, StatusPaid},
	}
	for _, tt := range tests {
		if got := DeriveStatus(tt.paid, tt.total); got != tt.want {
			t.Errorf("DeriveStatus(%d, %d) = %q, want %q", tt.paid, tt.total, got, tt.want)
		}
	}
}

func TestVerifyDerived(t *testing.T) {
	fresh := func() *Bill {
		b := inputBill(1000, line(2, money.Cents(2550)))
		b.ID = uuid.New()
		if err := Compute(b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return b
	}

	if err := VerifyDerived(fresh()); err != nil {
		t.Fatalf("unexpected error on consistent bill: %v", err)
	}

	tests := []struct {
		name    string
		corrupt func(*Bill)
	}{
		{"tampered line amount", func(b *Bill) { b.Services[0].Amount++ }},
		{"tampered total", func(b *Bill) { b.TotalAmount++ }},
		{"overdrawn paid", func(b *Bill) { b.PaidAmount = b.TotalAmount + 1 }},
		{"wrong status", func(b *Bill) { b.Status = StatusPaid }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fresh()
			tt.corrupt(b)
			err := VerifyDerived(b)
			if err == nil {
				t.Fatal("expected consistency error")
			}
			if apperr.KindOf(err) != apperr.KindInternal {
				t.Fatalf("expected internal error, got %v", err)
			}
		})
	}
}
