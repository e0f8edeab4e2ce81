package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/congregations/congregations/dto"
	"gerejaku_backend/internals/features/congregations/congregations/service"
	helper "gerejaku_backend/internals/helpers"
)

type CongregationController struct {
	svc *service.CongregationService
}

func NewCongregationController(db *gorm.DB) *CongregationController {
	return &CongregationController{svc: service.NewCongregationService(db)}
}

// 🔍 GET /api/congregations?status=&search=&page=&per_page=
func (ctrl *CongregationController) List(c *fiber.Ctx) error {
	var q dto.ListCongregationQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := helper.ValidateStruct(&q); err != nil {
		return helper.JsonBindError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 200)

	rows, total, err := ctrl.svc.List(c.UserContext(), service.ListParams{
		Status: q.Status,
		Search: q.Search,
		Offset: paging.Offset,
		Limit:  paging.Limit,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "Daftar jemaat berhasil diambil", dto.FromModels(rows), &pg)
}

// 🔍 GET /api/congregations/:id
func (ctrl *CongregationController) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := ctrl.svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Detail jemaat berhasil diambil", dto.FromModel(m))
}

// 🟢 POST /api/congregations
func (ctrl *CongregationController) Create(c *fiber.Ctx) error {
	var req dto.CongregationRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	m, err := ctrl.svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Jemaat berhasil ditambahkan", dto.FromModel(m))
}

// 🟡 PUT /api/congregations/:id
func (ctrl *CongregationController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CongregationRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	m, err := ctrl.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Jemaat berhasil diperbarui", dto.FromModel(m))
}

// 🔴 DELETE /api/congregations/:id
func (ctrl *CongregationController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.svc.Delete(c.UserContext(), id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Congregation deleted successfully", fiber.Map{"id": id})
}

// id yang bukan UUID pasti tidak ada di tabel → 404
func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, service.ErrCongregationNotFound
	}
	return id, nil
}
