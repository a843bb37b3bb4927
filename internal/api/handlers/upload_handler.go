package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/api/presenters"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/utils/storage"
)

var (
	MessageSuccessUploadImage = "image uploaded successfully"
	MessageFailedUploadImage  = "failed to upload image"
)

type (
	UploadHandler interface {
		UploadImage(c *fiber.Ctx) error
	}

	uploadHandler struct {
		s3 storage.AwsS3
	}
)

func NewUploadHandler(s3 storage.AwsS3) UploadHandler {
	return &uploadHandler{s3: s3}
}

// UploadImage stores a product photo and returns the url/key pair that
// submission and brand forms carry.
func (h *uploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	objectKey, err := h.s3.UploadFile(c.Context(), uuid.NewString(), file, "brand-images", storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, MessageFailedUploadImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"image_url": h.s3.GetPublicLinkKey(objectKey),
		"image_key": objectKey,
	}, fiber.StatusCreated, MessageSuccessUploadImage)
}
