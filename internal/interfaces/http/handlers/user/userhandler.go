package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mediticket/internal/application/user/usecases"
	"mediticket/internal/shared/logger"
	"mediticket/internal/shared/utils"
)

type UserHandler struct {
	registerUserUC usecases.RegisterUserExecutor
	getUserUC      usecases.GetUserExecutor
	listUsersUC    usecases.ListUsersExecutor
	updateUserUC   usecases.UpdateUserExecutor
	deleteUserUC   usecases.DeleteUserExecutor
	logger         logger.Interface
}

func NewUserHandler(
	registerUserUC usecases.RegisterUserExecutor,
	getUserUC usecases.GetUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	updateUserUC usecases.UpdateUserExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
) *UserHandler {
	return &UserHandler{
		registerUserUC: registerUserUC,
		getUserUC:      getUserUC,
		listUsersUC:    listUsersUC,
		updateUserUC:   updateUserUC,
		deleteUserUC:   deleteUserUC,
		logger:         logger.NewLogger(),
	}
}

// Register handles POST /gebruikers/nieuw
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.registerUserUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Gebruiker geregistreerd")
}

// Get handles GET /gebruikers/:id
func (h *UserHandler) Get(c *gin.Context) {
	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		UserID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /gebruikers/
func (h *UserHandler) List(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PUT /gebruikers/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:  c.Param("id"),
		ItsmeID: req.ItsmeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete handles DELETE /gebruikers/:id
func (h *UserHandler) Delete(c *gin.Context) {
	result, err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
