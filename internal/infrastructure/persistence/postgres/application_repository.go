package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hireboard/internal/database"
	"hireboard/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ApplicationRepository struct {
	db database.DB
}

func NewApplicationRepository(db database.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, applicant_id, cover_letter, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.JobID, a.ApplicantID, a.CoverLetter, a.Status.String(), a.CreatedAt,
	)
	if isUniqueViolation(err) {
		return application.ErrDuplicate
	}
	return err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_id, applicant_id, cover_letter, status, created_at, updated_at
		 FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, applicantID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.WithJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.status, a.created_at, a.updated_at,
		        j.title, j.location, j.salary, j.deadline, j.owner_id
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.applicant_id = $1
		 ORDER BY a.created_at DESC`,
		applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.WithJob, 0)
	for rows.Next() {
		var w application.WithJob
		var status string
		err := rows.Scan(
			&w.ID, &w.JobID, &w.ApplicantID, &w.CoverLetter, &status, &w.CreatedAt, &w.UpdatedAt,
			&w.JobTitle, &w.JobLocation, &w.JobSalary, &w.JobDeadline, &w.JobOwnerID,
		)
		if err != nil {
			return nil, err
		}
		w.Status = application.Status(status)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ApplicationRepository) ListByJobOwner(ctx context.Context, ownerID uuid.UUID) ([]application.ForRecruiter, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.status, a.created_at, a.updated_at,
		        u.name, u.email, j.title, j.location
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN users u ON u.id = a.applicant_id
		 WHERE j.owner_id = $1
		 ORDER BY a.created_at DESC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.ForRecruiter, 0)
	for rows.Next() {
		var f application.ForRecruiter
		var status string
		err := rows.Scan(
			&f.ID, &f.JobID, &f.ApplicantID, &f.CoverLetter, &status, &f.CreatedAt, &f.UpdatedAt,
			&f.ApplicantName, &f.ApplicantEmail, &f.JobTitle, &f.JobLocation,
		)
		if err != nil {
			return nil, err
		}
		f.Status = application.Status(status)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications SET status = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING id, job_id, applicant_id, cover_letter, status, created_at, updated_at`,
		id, status.String())
	return scanApplication(row)
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.CoverLetter, &status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
