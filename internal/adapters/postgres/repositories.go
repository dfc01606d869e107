package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"peorisk/internal/domain"
	"peorisk/internal/ports"
)

const assessmentColumns = `id, submitted_at, company_name, state, employees, years_in_business,
	annual_revenue, industry, workers_comp_coverage, safety_program, cal_osha_permit,
	previous_claims, answers_json::text`

// Insert stores one submission in a single statement.
func (db *DB) Insert(ctx context.Context, s domain.Submission) (int64, time.Time, error) {
	var id int64
	var at time.Time
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO assessments (submitted_at, company_name, state, employees, years_in_business,
			annual_revenue, industry, workers_comp_coverage, safety_program, cal_osha_permit,
			previous_claims, answers_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12::jsonb)
		RETURNING id, submitted_at
	`, s.SubmittedAt, s.CompanyName, s.State, s.Employees, s.YearsInBusiness,
		s.AnnualRevenue, s.Industry, s.WorkersComp, s.SafetyProgram, s.CalOshaPermit,
		s.PreviousClaims, s.AnswersRaw).Scan(&id, &at)
	if err != nil {
		return 0, time.Time{}, err
	}
	return id, at.UTC(), nil
}

func (db *DB) List(ctx context.Context) ([]domain.Submission, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+assessmentColumns+` FROM assessments ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (db *DB) Get(ctx context.Context, id int64) (domain.Submission, error) {
	row := db.Pool.QueryRow(ctx, `SELECT `+assessmentColumns+` FROM assessments WHERE id = $1`, id)
	s, err := scanSubmission(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Submission{}, ports.ErrNotFound
	}
	return s, err
}

func scanSubmission(row pgx.Row) (domain.Submission, error) {
	var s domain.Submission
	err := row.Scan(&s.ID, &s.SubmittedAt, &s.CompanyName, &s.State, &s.Employees, &s.YearsInBusiness,
		&s.AnnualRevenue, &s.Industry, &s.WorkersComp, &s.SafetyProgram, &s.CalOshaPermit,
		&s.PreviousClaims, &s.AnswersRaw)
	s.SubmittedAt = s.SubmittedAt.UTC()
	return s, err
}
