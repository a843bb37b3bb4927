package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/api/presenters"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/brand"
)

type (
	BrandHandler interface {
		List(c *fiber.Ctx) error
		GetByID(c *fiber.Ctx) error
		Create(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
		GetFilterOptions(c *fiber.Ctx) error
	}

	brandHandler struct {
		brandService brand.BrandService
		validator    *validator.Validate
	}
)

func NewBrandHandler(brandService brand.BrandService, validator *validator.Validate) BrandHandler {
	return &brandHandler{
		brandService: brandService,
		validator:    validator,
	}
}

// List degrades to an empty result when storage fails: browsing stays
// available even when the catalog cannot be read.
func (h *brandHandler) List(c *fiber.Ctx) error {
	filters := new(domain.BrandFilters)
	if err := c.QueryParser(filters); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	brands, err := h.brandService.List(c.Context(), *filters)
	if err != nil {
		log.Printf("brand list failed, degrading to empty result: %v", err)
		brands = []entities.MilkBrand{}
	}

	return presenters.SuccessResponse(c, brands, fiber.StatusOK, domain.MessageSuccessGetBrands)
}

func (h *brandHandler) GetByID(c *fiber.Ctx) error {
	brandID := c.Params("id")

	result, err := h.brandService.GetByID(c.Context(), brandID)
	if err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageBrandNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBrands, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetBrandDetail)
}

func (h *brandHandler) Create(c *fiber.Ctx) error {
	req := new(domain.CreateBrandRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBrand, err)
	}

	res, err := h.brandService.Create(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedCreateBrand, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBrand)
}

func (h *brandHandler) Update(c *fiber.Ctx) error {
	brandID := c.Params("id")
	req := new(domain.UpdateBrandRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBrand, err)
	}

	if err := h.brandService.Update(c.Context(), brandID, *req); err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageBrandNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBrand, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateBrand)
}

func (h *brandHandler) Delete(c *fiber.Ctx) error {
	brandID := c.Params("id")

	if err := h.brandService.Delete(c.Context(), brandID); err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageBrandNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteBrand, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBrand)
}

func (h *brandHandler) GetFilterOptions(c *fiber.Ctx) error {
	options, err := h.brandService.FilterOptions(c.Context())
	if err != nil {
		log.Printf("filter options failed, degrading to fixed lists: %v", err)
		options = domain.FilterOptionsResponse{
			PasteurizationTypes: entities.PasteurizationTypes,
			PhysicalChannels:    []string{},
			OnlineChannels:      []string{},
		}
	}

	return presenters.SuccessResponse(c, options, fiber.StatusOK, domain.MessageSuccessGetFilterOptions)
}
