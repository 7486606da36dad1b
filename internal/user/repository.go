package user

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a user or history entry does not exist.
var ErrNotFound = fmt.Errorf("user not found")

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	CreateHistory(ctx context.Context, h *MedicalHistory) error
	ListHistory(ctx context.Context, userID uuid.UUID) ([]MedicalHistory, error)
	DeleteHistory(ctx context.Context, userID, id uuid.UUID) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Create(ctx context.Context, u *User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	query := `
		INSERT INTO users (id, username, email, hashed_password, full_name, phone,
			date_of_birth, blood_group, address, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Username, u.Email, u.PasswordHash, nullString(u.FullName),
		nullString(u.Phone), u.DateOfBirth, nullString(u.BloodGroup),
		nullString(u.Address), u.IsAdmin, u.CreatedAt, u.UpdatedAt)
	return err
}

const userColumns = `id, username, email, hashed_password, full_name, phone,
	date_of_birth, blood_group, address, is_admin, created_at, updated_at`

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *postgresRepo) scanUser(row *sql.Row) (*User, error) {
	var u User
	var fullName, phone, bloodGroup, address sql.NullString
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &fullName,
		&phone, &u.DateOfBirth, &bloodGroup, &address, &u.IsAdmin,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.FullName = fullName.String
	u.Phone = phone.String
	u.BloodGroup = bloodGroup.String
	u.Address = address.String
	return &u, nil
}

func (r *postgresRepo) CreateHistory(ctx context.Context, h *MedicalHistory) error {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO medical_histories (id, user_id, condition, diagnosis_date, notes, is_chronic, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.UserID, h.Condition, h.DiagnosisDate, nullString(h.Notes),
		h.IsChronic, h.CreatedAt)
	return err
}

func (r *postgresRepo) ListHistory(ctx context.Context, userID uuid.UUID) ([]MedicalHistory, error) {
	query := `
		SELECT id, user_id, condition, diagnosis_date, notes, is_chronic, created_at
		FROM medical_histories WHERE user_id = $1 ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MedicalHistory
	for rows.Next() {
		var h MedicalHistory
		var notes sql.NullString
		if err := rows.Scan(&h.ID, &h.UserID, &h.Condition, &h.DiagnosisDate,
			&notes, &h.IsChronic, &h.CreatedAt); err != nil {
			return nil, err
		}
		h.Notes = notes.String
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *postgresRepo) DeleteHistory(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM medical_histories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
