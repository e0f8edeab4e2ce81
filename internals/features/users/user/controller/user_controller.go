package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/users/user/dto"
	"gerejaku_backend/internals/features/users/user/service"
	helper "gerejaku_backend/internals/helpers"
	authMw "gerejaku_backend/internals/middlewares/auth"
)

type UserController struct {
	svc *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{svc: service.NewUserService(db)}
}

// 🔍 GET /api/users?search=&status=&page=&per_page=
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	var q dto.ListUserQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := helper.ValidateStruct(&q); err != nil {
		return helper.JsonBindError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	users, total, err := uc.svc.List(c.UserContext(), service.ListParams{
		Search: q.Search,
		Status: q.Status,
		Offset: paging.Offset,
		Limit:  paging.Limit,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(users))
	return helper.JsonList(c, "Users fetched successfully", dto.FromModels(users), &pg)
}

// 🟡 PATCH /api/users/:id/status
func (uc *UserController) UpdateStatus(c *fiber.Ctx) error {
	actorID, userID, err := actorAndTarget(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateUserStatusRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	user, err := uc.svc.SetActive(c.UserContext(), actorID, userID, *req.IsActive)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Status user berhasil diubah", dto.FromModel(user))
}

// 🔴 DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	actorID, userID, err := actorAndTarget(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := uc.svc.Delete(c.UserContext(), actorID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "User deleted successfully", fiber.Map{"id": userID})
}

func actorAndTarget(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	raw, _ := c.Locals(authMw.LocalUserID).(string)
	actorID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, service.ErrUserNotFound
	}
	return actorID, userID, nil
}
