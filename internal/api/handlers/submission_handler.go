package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/api/presenters"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/submission"
)

type (
	SubmissionHandler interface {
		Create(c *fiber.Ctx) error
		GetByStatus(c *fiber.Ctx) error
		GetByID(c *fiber.Ctx) error
		Approve(c *fiber.Ctx) error
		Reject(c *fiber.Ctx) error
		Revalidate(c *fiber.Ctx) error
	}

	submissionHandler struct {
		submissionService submission.SubmissionService
		validator         *validator.Validate
	}
)

func NewSubmissionHandler(submissionService submission.SubmissionService, validator *validator.Validate) SubmissionHandler {
	return &submissionHandler{
		submissionService: submissionService,
		validator:         validator,
	}
}

// Create accepts anonymous submissions; user_id is set only when the
// optional-auth middleware resolved a caller.
func (h *submissionHandler) Create(c *fiber.Ctx) error {
	req := new(domain.CreateSubmissionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSubmission, err)
	}

	userID := ""
	if v, ok := c.Locals("user_id").(string); ok {
		userID = v
	}

	res, err := h.submissionService.Create(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedCreateSubmission, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSubmission)
}

func (h *submissionHandler) GetByStatus(c *fiber.Ctx) error {
	status := c.Query("status", entities.SubmissionStatusPending)

	submissions, err := h.submissionService.GetByStatus(c.Context(), status)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSubmissions, err)
	}

	return presenters.SuccessResponse(c, submissions, fiber.StatusOK, domain.MessageSuccessGetSubmissions)
}

func (h *submissionHandler) GetByID(c *fiber.Ctx) error {
	submissionID := c.Params("id")

	result, err := h.submissionService.GetByID(c.Context(), submissionID)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageSubmissionNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSubmissions, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetSubmissions)
}

func (h *submissionHandler) Approve(c *fiber.Ctx) error {
	submissionID := c.Params("id")
	reviewerID := c.Locals("user_id").(string)
	req := new(domain.ApproveSubmissionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.submissionService.Approve(c.Context(), submissionID, *req, reviewerID); err != nil {
		switch {
		case errors.Is(err, domain.ErrSubmissionNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageSubmissionNotFound, err)
		case errors.Is(err, domain.ErrSubmissionAlreadyReviewed):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedApproveSubmission, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApproveSubmission, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessApproveSubmission)
}

func (h *submissionHandler) Reject(c *fiber.Ctx) error {
	submissionID := c.Params("id")
	reviewerID := c.Locals("user_id").(string)
	req := new(domain.RejectSubmissionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRejectSubmission, err)
	}

	if err := h.submissionService.Reject(c.Context(), submissionID, *req, reviewerID); err != nil {
		switch {
		case errors.Is(err, domain.ErrSubmissionNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageSubmissionNotFound, err)
		case errors.Is(err, domain.ErrSubmissionAlreadyReviewed):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedRejectSubmission, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRejectSubmission, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRejectSubmission)
}

func (h *submissionHandler) Revalidate(c *fiber.Ctx) error {
	submissionID := c.Params("id")

	result, err := h.submissionService.Revalidate(c.Context(), submissionID)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageSubmissionNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRevalidate, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessRevalidate)
}
