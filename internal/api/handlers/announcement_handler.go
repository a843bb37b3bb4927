package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/api/presenters"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/announcement"
)

type (
	AnnouncementHandler interface {
		GetActive(c *fiber.Ctx) error
		GetAll(c *fiber.Ctx) error
		Create(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
	}

	announcementHandler struct {
		announcementService announcement.AnnouncementService
		validator           *validator.Validate
	}
)

func NewAnnouncementHandler(announcementService announcement.AnnouncementService, validator *validator.Validate) AnnouncementHandler {
	return &announcementHandler{
		announcementService: announcementService,
		validator:           validator,
	}
}

func (h *announcementHandler) GetActive(c *fiber.Ctx) error {
	announcements, err := h.announcementService.GetActive(c.Context())
	if err != nil {
		log.Printf("active announcements failed, degrading to empty result: %v", err)
		announcements = []entities.Announcement{}
	}

	return presenters.SuccessResponse(c, announcements, fiber.StatusOK, domain.MessageSuccessGetAnnouncements)
}

func (h *announcementHandler) GetAll(c *fiber.Ctx) error {
	announcements, err := h.announcementService.GetAll(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedGetAnnouncements, err)
	}

	return presenters.SuccessResponse(c, announcements, fiber.StatusOK, domain.MessageSuccessGetAnnouncements)
}

func (h *announcementHandler) Create(c *fiber.Ctx) error {
	createdBy := c.Locals("user_id").(string)
	req := new(domain.CreateAnnouncementRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAnnouncement, err)
	}

	res, err := h.announcementService.Create(c.Context(), *req, createdBy)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedCreateAnnouncement, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateAnnouncement)
}

func (h *announcementHandler) Update(c *fiber.Ctx) error {
	announcementID := c.Params("id")
	req := new(domain.UpdateAnnouncementRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAnnouncement, err)
	}

	if err := h.announcementService.Update(c.Context(), announcementID, *req); err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateAnnouncement, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAnnouncement, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateAnnouncement)
}

func (h *announcementHandler) Delete(c *fiber.Ctx) error {
	announcementID := c.Params("id")

	if err := h.announcementService.Delete(c.Context(), announcementID); err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteAnnouncement, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteAnnouncement, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteAnnouncement)
}
