package handler

import (
	"talent-pool/internal/delivery/http/dto"
	"talent-pool/internal/delivery/http/middleware"
	"talent-pool/internal/pkg/jwt"
	"talent-pool/internal/pkg/response"
	"talent-pool/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc   usecase.SkillUsecase
	auth *middleware.AuthMiddleware
}

type skillRequest struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (r skillRequest) toInput() usecase.SkillInput {
	return usecase.SkillInput{
		Slug:        r.Slug,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
	}
}

func NewSkillHandler(uc usecase.SkillUsecase, auth *middleware.AuthMiddleware) *SkillHandler {
	return &SkillHandler{uc: uc, auth: auth}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	writer := h.auth.RequireRoles(jwt.RoleUser, jwt.RoleAdmin)

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Post("/", writer, h.Create)
	grp.Put("/:id", writer, h.Update)
	grp.Delete("/:id", h.auth.RequireRoles(jwt.RoleAdmin), h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	d, err := h.uc.GetSkill(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillDetailResponse(d))
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateSkill(c.Context(), req.toInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Skill created successfully", dto.NewSkillResponse(created))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateSkill(c.Context(), id, req.toInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill updated successfully", dto.NewSkillResponse(updated))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSkill(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
