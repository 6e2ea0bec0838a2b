package handler

import (
	"errors"
	"time"

	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/domain/job"
	"hireboard/internal/pkg/policy"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"
	ucjob "hireboard/internal/usecase/job"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Salary      int64  `json:"salary"`
	Deadline    string `json:"deadline"`
}

type updateJobRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Salary      *int64  `json:"salary"`
	Deadline    *string `json:"deadline"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterRoutes keeps the listing public; everything else sits behind the
// auth middleware.
func (h *JobHandler) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Get("/", h.ListAll)

	protected := r.Group("", authRequired)
	protected.Get("/my-jobs", h.ListOwned)
	protected.Post("/", h.Create)
	protected.Put("/:id", h.Update)
	protected.Delete("/:id", h.Delete)
}

func (h *JobHandler) ListAll(c fiber.Ctx) error {
	jobs, err := h.uc.ListAll(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs))
}

func (h *JobHandler) ListOwned(c fiber.Ctx) error {
	callerID, role, ok := callerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	jobs, err := h.uc.ListOwned(c.Context(), callerID, role)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	callerID, role, ok := callerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid deadline", nil, err)
	}

	created, err := h.uc.Create(c.Context(), callerID, role, ucjob.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		Deadline:    deadline,
	})
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewJobResponse(created))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	callerID, _, ok := callerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	update := job.Update{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
	}
	if req.Deadline != nil {
		deadline, err := parseDeadline(*req.Deadline)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid deadline", nil, err)
		}
		update.Deadline = deadline
	}

	updated, err := h.uc.Update(c.Context(), callerID, jobID, update)
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(updated))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	callerID, _, ok := callerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	if err := h.uc.Delete(c.Context(), callerID, jobID); err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job removed", nil)
}

func mapJobError(err error) error {
	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, policy.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized. Recruiters only.", nil, err)
	case errors.Is(err, ucjob.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// parseDeadline accepts a bare date or a full timestamp; an empty string
// means no deadline.
func parseDeadline(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
