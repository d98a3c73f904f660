package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP para el recurso User.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler inyectando el caso de uso.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := strictBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido: "+err.Error())
	}
	if in.Email == "" || in.Password == "" || in.Role == "" {
		return fail(c, fiber.StatusBadRequest, "email, password y role son requeridos")
	}
	out, err := h.uc.Create(CurrentUser(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	out, err := h.uc.GetByID(CurrentUser(c), int64(id))
	if err != nil {
		return failDomain(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "usuario no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios visibles para el solicitante
// @Tags         users
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(100)
// @Param        skip   query  int  false  "Skip"    default(0)
// @Success      200    {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 100), Skip: c.QueryInt("skip", 0)}
	out, err := h.uc.List(CurrentUser(c), page)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	var in dto.UpdateUserRequest
	if err := strictBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido: "+err.Error())
	}
	out, err := h.uc.Update(CurrentUser(c), int64(id), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Dar de baja a un usuario
// @Description  Por defecto es baja lógica (is_active=false). Con ?hard=true el
// @Description  superuser borra la fila físicamente.
// @Tags         users
// @Produce      json
// @Param        id    path   int   true   "ID del usuario"
// @Param        hard  query  bool  false  "Borrado físico (solo superuser)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	if c.QueryBool("hard", false) {
		if err := h.uc.Delete(CurrentUser(c), int64(id)); err != nil {
			return failDomain(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "usuario eliminado"})
	}
	if err := h.uc.Deactivate(CurrentUser(c), int64(id)); err != nil {
		return failDomain(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuario dado de baja"})
}
