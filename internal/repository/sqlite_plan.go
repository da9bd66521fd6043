package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/boilerai/boilerplan/internal/db"
	"github.com/boilerai/boilerplan/internal/domain"
)

// SQLitePlanRepo stores generated plans as immutable snapshots.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

const planColumns = `id, student_id, status, selected, success_probability, payload, created_at`

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.PlanSnapshot) error {
	selected := p.Selected
	if selected == nil {
		selected = domain.SelectedChoices{}
	}
	selectedRaw, err := encodeJSON(selected, "selected")
	if err != nil {
		return err
	}
	payload, err := encodeJSON(p.Plan, "plan payload")
	if err != nil {
		return err
	}
	query := `INSERT INTO plan_snapshots (` + planColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.StudentID,
		string(p.Status),
		selectedRaw,
		p.Plan.SuccessProbability,
		payload,
		formatTimestamp(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting plan snapshot: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.PlanSnapshot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plan_snapshots WHERE id = ?`, id)
	p, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	return p, err
}

// Latest returns the most recent snapshot for a student.
func (r *SQLitePlanRepo) Latest(ctx context.Context, studentID string) (*domain.PlanSnapshot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plan_snapshots
		WHERE student_id = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`, studentID)
	p, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("plan for student %s: %w", studentID, ErrNotFound)
	}
	return p, err
}

// ListByStudent returns snapshots newest first. A limit <= 0 returns all.
func (r *SQLitePlanRepo) ListByStudent(ctx context.Context, studentID string, limit int) ([]*domain.PlanSnapshot, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+planColumns+` FROM plan_snapshots
		WHERE student_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.PlanSnapshot
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func scanPlan(row rowScanner) (*domain.PlanSnapshot, error) {
	var p domain.PlanSnapshot
	var status, selected, payload, createdAt string
	var probability float64

	err := row.Scan(&p.ID, &p.StudentID, &status, &selected, &probability, &payload, &createdAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning plan snapshot: %w", err)
	}

	p.Status = domain.PlanStatus(status)
	if err := decodeJSON(selected, &p.Selected, "selected"); err != nil {
		return nil, err
	}
	if err := decodeJSON(payload, &p.Plan, "plan payload"); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &p, nil
}
