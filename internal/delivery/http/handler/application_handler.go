package handler

import (
	"errors"
	"fmt"

	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/domain/application"
	"hireboard/internal/domain/job"
	"hireboard/internal/pkg/policy"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	JobID       string `json:"jobId"`
	CoverLetter string `json:"coverLetter"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/", h.Apply)
	r.Get("/my-applications", h.ListMine)
	r.Get("/recruiter-applications", h.ListForRecruiter)
	r.Put("/:id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	callerID, role, ok := callerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	created, err := h.uc.Apply(c.Context(), callerID, role, jobID, req.CoverLetter)
	if err != nil {
		return mapApplicationError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewApplicationResponse(created))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	callerID, _, ok := callerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	list, err := h.uc.ListForApplicant(c.Context(), callerID)
	if err != nil {
		return mapApplicationError(err)
	}

	if len(list) == 0 {
		return response.Success(c, fiber.StatusOK, "You haven't applied to any jobs yet.", dto.NewMyApplicationsResponse(nil))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMyApplicationsResponse(list))
}

func (h *ApplicationHandler) ListForRecruiter(c fiber.Ctx) error {
	callerID, role, ok := callerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	list, err := h.uc.ListForRecruiter(c.Context(), callerID, role)
	if err != nil {
		return mapApplicationError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecruiterApplicationsResponse(list))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	callerID, _, ok := callerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found.", nil, err)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, err := h.uc.UpdateStatus(c.Context(), callerID, applicationID, req.Status)
	if err != nil {
		return mapApplicationError(err)
	}

	msg := fmt.Sprintf("Application %s successfully.", updated.Status)
	return response.Success(c, fiber.StatusOK, msg, dto.NewApplicationResponse(updated))
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, application.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found.", nil, err)
	case errors.Is(err, application.ErrDuplicate):
		return middleware.NewAppError(fiber.StatusBadRequest, "You have already applied to this job", nil, err)
	case errors.Is(err, application.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, err)
	case errors.Is(err, policy.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Access denied", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
