package patient

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

const cols = `id, name, age, gender, blood_type, phone, email, address,
	registration_date, emergency_contact, created_at, updated_at`

const insertSQL = `
	INSERT INTO patients (id, name, age, gender, blood_type, phone, email,
		address, registration_date, emergency_contact)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.BloodType, &p.Phone,
		&p.Email, &p.Address, &p.RegistrationDate, &p.EmergencyContact,
		&p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func insertArgs(p *Patient) []interface{} {
	return []interface{}{p.ID, p.Name, p.Age, p.Gender, p.BloodType, p.Phone,
		p.Email, p.Address, p.RegistrationDate, p.EmergencyContact}
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	if _, err := r.pool.Exec(ctx, insertSQL, insertArgs(p)...); err != nil {
		return apperr.Storage("insert patient", err)
	}
	return nil
}

func (r *repoPG) CreateMany(ctx context.Context, ps []*Patient) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperr.Storage("begin patient batch", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range ps {
		p.ID = uuid.New()
		if _, err := tx.Exec(ctx, insertSQL, insertArgs(p)...); err != nil {
			return apperr.Storage("insert patient batch", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return apperr.Storage("commit patient batch", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM patients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("patient %s not found", id)
		}
		return nil, apperr.Storage("get patient", err)
	}
	return p, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM patients ORDER BY created_at`)
	if err != nil {
		return nil, apperr.Storage("list patients", err)
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, apperr.Storage("scan patient", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterate patients", err)
	}
	return patients, nil
}
