package v1

import (
	"talent-pool/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Candidates *handler.CandidateHandler
	Skills     *handler.SkillHandler
	Reports    *handler.ReportHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Candidates != nil {
		h.Candidates.RegisterRoutes(r)
	}
	if h.Skills != nil {
		h.Skills.RegisterRoutes(r)
	}
	if h.Reports != nil {
		h.Reports.RegisterRoutes(r)
	}
}
