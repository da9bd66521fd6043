package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/boilerai/boilerplan/internal/db"
	"github.com/boilerai/boilerplan/internal/domain"
)

// SQLiteStudentRepo implements StudentRepo using a SQLite database.
type SQLiteStudentRepo struct {
	db db.DBTX
}

// NewSQLiteStudentRepo creates a new SQLiteStudentRepo.
func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

const studentColumns = `id, seq, name, major, track, current_year, current_term, summer_courses,
	credit_load, graduation_goal, completed_courses, created_at, updated_at`

func (r *SQLiteStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	completed, err := encodeJSON(nonNilStrings(s.Profile.CompletedCourses), "completed_courses")
	if err != nil {
		return err
	}
	query := `INSERT INTO students (` + studentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.Seq,
		s.Name,
		string(s.Profile.Major),
		s.Profile.Track,
		s.Profile.CurrentYear,
		string(s.Profile.CurrentTerm),
		nullableBoolToValue(s.Profile.SummerCourses),
		string(s.Profile.CreditLoad),
		string(s.Profile.GraduationGoal),
		completed,
		formatTimestamp(s.CreatedAt),
		formatTimestamp(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting student: %w", err)
	}
	return nil
}

func (r *SQLiteStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE id = ?`, id)
	s, err := scanStudent(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("student %s: %w", id, ErrNotFound)
	}
	return s, err
}

func (r *SQLiteStudentRepo) GetBySeq(ctx context.Context, seq int) (*domain.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE seq = ?`, seq)
	s, err := scanStudent(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("student #%d: %w", seq, ErrNotFound)
	}
	return s, err
}

func (r *SQLiteStudentRepo) List(ctx context.Context) ([]*domain.Student, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+studentColumns+` FROM students ORDER BY seq, created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	return students, nil
}

func (r *SQLiteStudentRepo) Update(ctx context.Context, s *domain.Student) error {
	completed, err := encodeJSON(nonNilStrings(s.Profile.CompletedCourses), "completed_courses")
	if err != nil {
		return err
	}
	query := `UPDATE students SET name = ?, major = ?, track = ?, current_year = ?, current_term = ?,
		summer_courses = ?, credit_load = ?, graduation_goal = ?, completed_courses = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		string(s.Profile.Major),
		s.Profile.Track,
		s.Profile.CurrentYear,
		string(s.Profile.CurrentTerm),
		nullableBoolToValue(s.Profile.SummerCourses),
		string(s.Profile.CreditLoad),
		string(s.Profile.GraduationGoal),
		completed,
		formatTimestamp(s.UpdatedAt),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating student: %w", err)
	}
	return requireAffected(res, "student "+s.ID)
}

func (r *SQLiteStudentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting student: %w", err)
	}
	return requireAffected(res, "student "+id)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanStudent returns sql.ErrNoRows unwrapped so callers can attach the
// lookup key to ErrNotFound.
func scanStudent(row rowScanner) (*domain.Student, error) {
	var s domain.Student
	var major, term, load, goal, completed, createdAt, updatedAt string
	var summer sql.NullInt64

	err := row.Scan(
		&s.ID, &s.Seq, &s.Name,
		&major, &s.Profile.Track, &s.Profile.CurrentYear, &term, &summer,
		&load, &goal, &completed,
		&createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning student: %w", err)
	}

	s.Profile.Major = domain.Major(major)
	s.Profile.CurrentTerm = domain.Term(term)
	s.Profile.CreditLoad = domain.CreditLoad(load)
	s.Profile.GraduationGoal = domain.GraduationGoal(goal)
	s.Profile.SummerCourses = parseNullableBool(summer)
	if err := decodeJSON(completed, &s.Profile.CompletedCourses, "completed_courses"); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTimestamp(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &s, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
