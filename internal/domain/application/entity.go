package application

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	CoverLetter string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WithJob is an application joined with the job it targets, the shape the
// applicant-facing listing returns.
type WithJob struct {
	Application
	JobTitle    string
	JobLocation string
	JobSalary   int64
	JobDeadline *time.Time
	JobOwnerID  uuid.UUID
}

// ForRecruiter is an application joined with applicant contact details and
// a slim view of the job, the shape the recruiter-facing listing returns.
type ForRecruiter struct {
	Application
	ApplicantName  string
	ApplicantEmail string
	JobTitle       string
	JobLocation    string
}
