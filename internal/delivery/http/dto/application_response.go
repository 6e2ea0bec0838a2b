package dto

import (
	"time"

	"github.com/google/uuid"

	"hireboard/internal/domain/application"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	CoverLetter string    `json:"cover_letter"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		CoverLetter: a.CoverLetter,
		Status:      a.Status.String(),
		CreatedAt:   a.CreatedAt,
	}
}

// MyApplicationResponse is the applicant-facing listing entry, application
// plus the job it targets.
type MyApplicationResponse struct {
	ApplicationResponse
	Job MyApplicationJob `json:"job"`
}

type MyApplicationJob struct {
	ID       uuid.UUID  `json:"id"`
	Title    string     `json:"title"`
	Location string     `json:"location"`
	Salary   int64      `json:"salary"`
	Deadline *time.Time `json:"deadline"`
}

func NewMyApplicationsResponse(list []application.WithJob) []MyApplicationResponse {
	out := make([]MyApplicationResponse, 0, len(list))
	for _, w := range list {
		out = append(out, MyApplicationResponse{
			ApplicationResponse: NewApplicationResponse(w.Application),
			Job: MyApplicationJob{
				ID:       w.JobID,
				Title:    w.JobTitle,
				Location: w.JobLocation,
				Salary:   w.JobSalary,
				Deadline: w.JobDeadline,
			},
		})
	}
	return out
}

// RecruiterApplicationResponse is the recruiter-facing listing entry,
// application plus applicant contact details and a slim job view.
type RecruiterApplicationResponse struct {
	ApplicationResponse
	Applicant RecruiterApplicationApplicant `json:"applicant"`
	Job       RecruiterApplicationJob       `json:"job"`
}

type RecruiterApplicationApplicant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RecruiterApplicationJob struct {
	Title    string `json:"title"`
	Location string `json:"location"`
}

func NewRecruiterApplicationsResponse(list []application.ForRecruiter) []RecruiterApplicationResponse {
	out := make([]RecruiterApplicationResponse, 0, len(list))
	for _, f := range list {
		out = append(out, RecruiterApplicationResponse{
			ApplicationResponse: NewApplicationResponse(f.Application),
			Applicant: RecruiterApplicationApplicant{
				Name:  f.ApplicantName,
				Email: f.ApplicantEmail,
			},
			Job: RecruiterApplicationJob{
				Title:    f.JobTitle,
				Location: f.JobLocation,
			},
		})
	}
	return out
}
