package api

import (
	"net/http"

	reqdto "premium-reconciler/internal/handler/dto/request"
	resdto "premium-reconciler/internal/handler/dto/response"
	"premium-reconciler/internal/handler/httperr"
	"premium-reconciler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	rewards commands.RewardCommands
}

func NewAdminHandler(rewards commands.RewardCommands) *AdminHandler {
	return &AdminHandler{rewards: rewards}
}

// @Summary Adjust points
// @Description Add a signed, non-zero delta to a user's points. Creates the user if needed.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GrantPointsRequest true "Adjustment"
// @Success 200 {object} resdto.PointsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/points [post]
func (h *AdminHandler) GrantPoints(c *gin.Context) {
	var req reqdto.GrantPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}

	total, err := h.rewards.GrantPoints(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err, "Grant points failed")
		return
	}
	c.JSON(http.StatusOK, resdto.PointsResponse{UserID: req.UserID, Points: total})
}

// @Summary Broadcast
// @Description Queue a message for every registered user. Delivery is throttled by the dispatcher.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BroadcastRequest true "Message"
// @Success 202 {object} resdto.BroadcastResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/broadcasts [post]
func (h *AdminHandler) Broadcast(c *gin.Context) {
	var req reqdto.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.rewards.Broadcast(c.Request.Context(), req.Text)
	if err != nil {
		httperr.Abort(c, err, "Broadcast failed")
		return
	}
	c.JSON(http.StatusAccepted, resdto.BroadcastResponse{Enqueued: res.Enqueued})
}
