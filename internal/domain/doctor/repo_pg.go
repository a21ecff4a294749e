package doctor

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/internal/platform/apperr"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const cols = `id, name, specialization, experience, phone, email, avatar,
	availability, created_at, updated_at`

const insertSQL = `
	INSERT INTO doctors (id, name, specialization, experience, phone, email,
		avatar, availability)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

const uniqueViolation = "23505"

// mapInsertErr turns the doctors_email_key unique violation into a
// validation error so callers see 400, not 500.
func mapInsertErr(op string, d *Doctor, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Validationf("email %q is already registered", d.Email)
	}
	return apperr.Storage(op, err)
}

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var (
		d     Doctor
		avail []byte
	)
	err := row.Scan(&d.ID, &d.Name, &d.Specialization, &d.Experience, &d.Phone,
		&d.Email, &d.Avatar, &avail, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(avail) > 0 {
		if err := json.Unmarshal(avail, &d.Availability); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

func insertArgs(d *Doctor) ([]interface{}, error) {
	avail, err := json.Marshal(d.Availability)
	if err != nil {
		return nil, err
	}
	return []interface{}{d.ID, d.Name, d.Specialization, d.Experience, d.Phone,
		d.Email, d.Avatar, avail}, nil
}

func (r *repoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	args, err := insertArgs(d)
	if err != nil {
		return apperr.Storage("encode doctor availability", err)
	}
	if _, err := r.pool.Exec(ctx, insertSQL, args...); err != nil {
		return mapInsertErr("insert doctor", d, err)
	}
	return nil
}

func (r *repoPG) CreateMany(ctx context.Context, ds []*Doctor) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperr.Storage("begin doctor batch", err)
	}
	defer tx.Rollback(ctx)

	for _, d := range ds {
		d.ID = uuid.New()
		args, err := insertArgs(d)
		if err != nil {
			return apperr.Storage("encode doctor availability", err)
		}
		if _, err := tx.Exec(ctx, insertSQL, args...); err != nil {
			return mapInsertErr("insert doctor batch", d, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return apperr.Storage("commit doctor batch", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	d, err := scanDoctor(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM doctors WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("doctor %s not found", id)
		}
		return nil, apperr.Storage("get doctor", err)
	}
	return d, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM doctors ORDER BY created_at`)
	if err != nil {
		return nil, apperr.Storage("list doctors", err)
	}
	defer rows.Close()

	var doctors []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, apperr.Storage("scan doctor", err)
		}
		doctors = append(doctors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterate doctors", err)
	}
	return doctors, nil
}
