package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/api/presenters"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/stats"
)

type (
	StatsHandler interface {
		Get(c *fiber.Ctx) error
	}

	statsHandler struct {
		statsService stats.StatsService
	}
)

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandler{statsService: statsService}
}

func (h *statsHandler) Get(c *fiber.Ctx) error {
	res, err := h.statsService.Get(c.Context())
	if err != nil {
		log.Printf("stats failed, degrading to zero counts: %v", err)
		res = domain.StatsResponse{}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}
