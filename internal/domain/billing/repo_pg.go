package billing

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/pkg/money"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const cols = `id, patient_id, patient_name, date, due_date, services,
	total_amount, paid_amount, status, created_at, updated_at`

const insertSQL = `
	INSERT INTO bills (id, patient_id, patient_name, date, due_date,
		services, total_amount, paid_amount, status)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

// addPaymentSQL increments paid_amount and derives the new status in one
// conditional statement. The WHERE clause rejects overdraws, so the
// arithmetic happens entirely inside the database and concurrent
// payments serialize on the row without losing updates.
const addPaymentSQL = `
	UPDATE bills
	SET paid_amount = paid_amount + $2,
	    status = CASE
	        WHEN paid_amount + $2 = total_amount THEN 'paid'
	        WHEN paid_amount + $2 = 0 THEN 'unpaid'
	        ELSE 'partial'
	    END,
	    updated_at = now()
	WHERE id = $1 AND paid_amount + $2 <= total_amount
	RETURNING ` + cols

func scanBill(row pgx.Row) (*Bill, error) {
	var (
		b        Bill
		services []byte
	)
	err := row.Scan(&b.ID, &b.PatientID, &b.PatientName, &b.Date, &b.DueDate,
		&services, &b.TotalAmount, &b.PaidAmount, &b.Status,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(services) > 0 {
		if err := json.Unmarshal(services, &b.Services); err != nil {
			return nil, err
		}
	}
	return &b, nil
}

func (r *repoPG) Create(ctx context.Context, b *Bill) error {
	b.ID = uuid.New()
	services, err := json.Marshal(b.Services)
	if err != nil {
		return apperr.Storage("encode bill services", err)
	}
	_, err = r.pool.Exec(ctx, insertSQL, b.ID, b.PatientID, b.PatientName,
		b.Date, b.DueDate, services, b.TotalAmount, b.PaidAmount, b.Status)
	if err != nil {
		return apperr.Storage("insert bill", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Bill, error) {
	b, err := scanBill(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM bills WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("bill %s not found", id)
		}
		return nil, apperr.Storage("get bill", err)
	}
	return b, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Bill, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM bills ORDER BY created_at`)
	if err != nil {
		return nil, apperr.Storage("list bills", err)
	}
	defer rows.Close()

	var bills []*Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, apperr.Storage("scan bill", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterate bills", err)
	}
	return bills, nil
}

func (r *repoPG) AddPayment(ctx context.Context, id uuid.UUID, amount money.Cents) (*Bill, error) {
	b, err := scanBill(r.pool.QueryRow(ctx, addPaymentSQL, id, amount))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Storage("record payment", err)
	}
	// The guarded update matched nothing: either the bill is missing or
	// the increment would overdraw it. A follow-up read disambiguates.
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, apperr.InvalidPaymentf("payment %s would exceed remaining balance %s",
		amount, cur.TotalAmount-cur.PaidAmount)
}
