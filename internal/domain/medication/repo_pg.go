package medication

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/internal/platform/apperr"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const cols = `id, name, category, stock, manufacturer, expiry_date, unit_price,
	created_at, updated_at`

const insertSQL = `
	INSERT INTO medications (id, name, category, stock, manufacturer,
		expiry_date, unit_price)
	VALUES ($1,$2,$3,$4,$5,$6,$7)`

func scanMedication(row pgx.Row) (*Medication, error) {
	var m Medication
	err := row.Scan(&m.ID, &m.Name, &m.Category, &m.Stock, &m.Manufacturer,
		&m.ExpiryDate, &m.UnitPrice, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Medication) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, insertSQL, m.ID, m.Name, m.Category, m.Stock,
		m.Manufacturer, m.ExpiryDate, m.UnitPrice)
	if err != nil {
		return apperr.Storage("insert medication", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Medication, error) {
	m, err := scanMedication(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM medications WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("medication %s not found", id)
		}
		return nil, apperr.Storage("get medication", err)
	}
	return m, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Medication, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM medications ORDER BY created_at`)
	if err != nil {
		return nil, apperr.Storage("list medications", err)
	}
	defer rows.Close()

	var meds []*Medication
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, apperr.Storage("scan medication", err)
		}
		meds = append(meds, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterate medications", err)
	}
	return meds, nil
}
