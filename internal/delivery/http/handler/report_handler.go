package handler

import (
	"talent-pool/internal/delivery/http/dto"
	"talent-pool/internal/pkg/response"
	"talent-pool/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReportHandler struct {
	uc usecase.ReportUsecase
}

func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/reports")
	grp.Get("/candidates/top-by-popularity", h.TopByPopularity)
}

// TopByPopularity renders an empty object when no candidate has a score.
func (h *ReportHandler) TopByPopularity(c fiber.Ctx) error {
	top, ok, err := h.uc.TopCandidateByPopularity(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TopCandidateResponse{
		CandidateID:            top.CandidateID,
		AveragePopularityScore: top.AveragePopularityScore,
	})
}
