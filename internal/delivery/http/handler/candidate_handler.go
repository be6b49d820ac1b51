package handler

import (
	"talent-pool/internal/delivery/http/dto"
	"talent-pool/internal/delivery/http/middleware"
	"talent-pool/internal/pkg/jwt"
	"talent-pool/internal/pkg/response"
	"talent-pool/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc       usecase.CandidateUsecase
	populate usecase.PopulateUsecase
	auth     *middleware.AuthMiddleware
}

type skillIDRequest struct {
	ID int64 `json:"id"`
}

type candidateRequest struct {
	Name      string           `json:"name"`
	Phone     string           `json:"phone"`
	Education string           `json:"education"`
	Skills    []skillIDRequest `json:"skills"`
}

func (r candidateRequest) toInput() usecase.CandidateInput {
	ids := make([]int64, 0, len(r.Skills))
	for _, s := range r.Skills {
		ids = append(ids, s.ID)
	}
	return usecase.CandidateInput{
		Name:      r.Name,
		Phone:     r.Phone,
		Education: r.Education,
		SkillIDs:  ids,
	}
}

func NewCandidateHandler(uc usecase.CandidateUsecase, populate usecase.PopulateUsecase, auth *middleware.AuthMiddleware) *CandidateHandler {
	return &CandidateHandler{uc: uc, populate: populate, auth: auth}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	writer := h.auth.RequireRoles(jwt.RoleUser, jwt.RoleAdmin)
	admin := h.auth.RequireRoles(jwt.RoleAdmin)

	grp := r.Group("/candidates")
	grp.Get("/", h.List)
	grp.Get("/filter", h.Filter)
	if h.populate != nil {
		grp.Get("/populate", admin, h.Populate)
	}
	grp.Get("/:id", h.Get)
	grp.Post("/", writer, h.Create)
	grp.Put("/:candidateId/skills/:skillId", writer, h.LinkSkill)
	grp.Put("/:id", writer, h.Update)
	grp.Delete("/:id", admin, h.Delete)
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListCandidates(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateListResponse(items))
}

// Filter answers an unknown category with an empty list, not an error.
func (h *CandidateHandler) Filter(c fiber.Ctx) error {
	items, err := h.uc.FilterByCategory(c.Context(), c.Query("category"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateListResponse(items))
}

func (h *CandidateHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.uc.GetCandidate(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponse(item))
}

func (h *CandidateHandler) Create(c fiber.Ctx) error {
	var req candidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateCandidate(c.Context(), req.toInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Candidate created successfully", dto.NewCandidateResponse(created))
}

func (h *CandidateHandler) Update(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req candidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateCandidate(c.Context(), id, req.toInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Candidate updated successfully", dto.NewCandidateResponse(updated))
}

func (h *CandidateHandler) Delete(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCandidate(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CandidateHandler) LinkSkill(c fiber.Ctx) error {
	candidateID, err := paramID(c, "candidateId")
	if err != nil {
		return err
	}
	skillID, err := paramID(c, "skillId")
	if err != nil {
		return err
	}

	item, err := h.uc.LinkSkill(c.Context(), candidateID, skillID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill linked successfully", dto.NewCandidateResponse(item))
}

func (h *CandidateHandler) Populate(c fiber.Ctx) error {
	res, err := h.populate.Populate(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, res.Message, dto.PopulateResponse{Populated: res.Populated})
}
