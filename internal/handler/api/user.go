package api

import (
	"net/http"

	reqdto "premium-reconciler/internal/handler/dto/request"
	resdto "premium-reconciler/internal/handler/dto/response"
	"premium-reconciler/internal/handler/httperr"
	"premium-reconciler/internal/usecase/commands"
	"premium-reconciler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds         commands.UserCommands
	entitlements queries.EntitlementQueries
}

func NewUserHandler(cmds commands.UserCommands, entitlements queries.EntitlementQueries) *UserHandler {
	return &UserHandler{cmds: cmds, entitlements: entitlements}
}

// @Summary Register user
// @Description Create or refresh the chat profile of a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param owner path int true "User ID"
// @Param request body reqdto.RegisterUserRequest true "Profile"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /api/users/{owner} [put]
func (h *UserHandler) Register(c *gin.Context) {
	owner, ok := ownerParam(c)
	if !ok {
		return
	}
	var req reqdto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.RegisterUser(c.Request.Context(), req.ToCommand(owner))
	if err != nil {
		httperr.Abort(c, err, "Register user failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserSnapshot(snap))
}

// @Summary Entitlement status
// @Description unregistered, active (with active_until) or inactive
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param owner path int true "User ID"
// @Success 200 {object} resdto.EntitlementResponse
// @Router /api/users/{owner}/entitlement [get]
func (h *UserHandler) Entitlement(c *gin.Context) {
	owner, ok := ownerParam(c)
	if !ok {
		return
	}
	status, err := h.entitlements.Status(c.Request.Context(), owner)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load entitlement", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntitlementStatus(status))
}
