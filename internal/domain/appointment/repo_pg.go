package appointment

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

const cols = `id, patient_id, patient_name, doctor_id, doctor_name, date,
	time, status, type, notes, created_at, updated_at`

const insertSQL = `
	INSERT INTO appointments (id, patient_id, patient_name, doctor_id,
		doctor_name, date, time, status, type, notes)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.PatientName, &a.DoctorID,
		&a.DoctorName, &a.Date, &a.Time, &a.Status, &a.Type, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, insertSQL, a.ID, a.PatientID, a.PatientName,
		a.DoctorID, a.DoctorName, a.Date, a.Time, a.Status, a.Type, a.Notes)
	if err != nil {
		return apperr.Storage("insert appointment", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppointment(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM appointments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("appointment %s not found", id)
		}
		return nil, apperr.Storage("get appointment", err)
	}
	return a, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM appointments ORDER BY date, time`)
	if err != nil {
		return nil, apperr.Storage("list appointments", err)
	}
	defer rows.Close()

	var appts []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, apperr.Storage("scan appointment", err)
		}
		appts = append(appts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterate appointments", err)
	}
	return appts, nil
}
