package triage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Consultation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Consultation, error)
	ListCases(ctx context.Context, status Status, priority Priority) ([]Consultation, error)
	UpdateCase(ctx context.Context, c *Consultation) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

const consultationColumns = `id, user_id, symptoms, image_path, ai_response, priority, first_aid,
	recommended_specialization, status, supervising_admin_id, supervision_notes,
	use_history, is_synced, created_offline, created_at`

func (r *postgresRepo) Create(ctx context.Context, c *Consultation) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO consultations (` + consultationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.UserID, c.Symptoms, nullString(c.ImagePath), c.Response, c.Priority,
		nullString(c.FirstAid), nullString(c.Specialization), c.Status,
		c.SupervisingAdminID, nullString(c.SupervisionNotes),
		c.UseHistory, c.IsSynced, c.CreatedOffline, c.CreatedAt)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE id = $1`
	c, err := scanConsultation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("consultation not found")
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Consultation, error) {
	query := `SELECT ` + consultationColumns + `
		FROM consultations WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectConsultations(rows)
}

func (r *postgresRepo) ListCases(ctx context.Context, status Status, priority Priority) ([]Consultation, error) {
	query := `SELECT ` + consultationColumns + `
		FROM consultations
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR priority = $2)
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, string(status), string(priority))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectConsultations(rows)
}

func (r *postgresRepo) UpdateCase(ctx context.Context, c *Consultation) error {
	query := `
		UPDATE consultations
		SET status = $2, supervising_admin_id = $3, supervision_notes = $4
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Status, c.SupervisingAdminID, nullString(c.SupervisionNotes))
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConsultation(row rowScanner) (*Consultation, error) {
	var c Consultation
	var imagePath, firstAid, specialization, notes sql.NullString
	err := row.Scan(
		&c.ID, &c.UserID, &c.Symptoms, &imagePath, &c.Response, &c.Priority,
		&firstAid, &specialization, &c.Status, &c.SupervisingAdminID, &notes,
		&c.UseHistory, &c.IsSynced, &c.CreatedOffline, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.ImagePath = imagePath.String
	c.FirstAid = firstAid.String
	c.Specialization = specialization.String
	c.SupervisionNotes = notes.String
	return &c, nil
}

func collectConsultations(rows *sql.Rows) ([]Consultation, error) {
	var out []Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
