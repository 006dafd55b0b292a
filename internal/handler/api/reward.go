package api

import (
	"net/http"
	"strconv"

	resdto "premium-reconciler/internal/handler/dto/response"
	"premium-reconciler/internal/handler/httperr"
	"premium-reconciler/internal/usecase/commands"
	"premium-reconciler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	cmds commands.RewardCommands
	q    queries.RewardQueries
}

func NewRewardHandler(cmds commands.RewardCommands, q queries.RewardQueries) *RewardHandler {
	return &RewardHandler{cmds: cmds, q: q}
}

// @Summary Daily claim
// @Description Award the daily points once per UTC day. A repeat claim returns already_claimed.
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param owner path int true "User ID"
// @Success 200 {object} resdto.ClaimResponse
// @Router /api/users/{owner}/claims [post]
func (h *RewardHandler) Claim(c *gin.Context) {
	owner, ok := ownerParam(c)
	if !ok {
		return
	}
	res, err := h.cmds.Claim(c.Request.Context(), owner)
	if err != nil {
		httperr.Abort(c, err, "Claim failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromClaimResult(res))
}

// @Summary Claim status
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param owner path int true "User ID"
// @Success 200 {object} resdto.ClaimStatusResponse
// @Router /api/users/{owner}/claims [get]
func (h *RewardHandler) ClaimStatus(c *gin.Context) {
	owner, ok := ownerParam(c)
	if !ok {
		return
	}
	view, err := h.q.ClaimStatus(c.Request.Context(), owner)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load claim status", nil)
		return
	}
	res, err := resdto.FromClaimStatus(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render claim status", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Points balance
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param owner path int true "User ID"
// @Success 200 {object} resdto.PointsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/users/{owner}/points [get]
func (h *RewardHandler) Points(c *gin.Context) {
	owner, ok := ownerParam(c)
	if !ok {
		return
	}
	points, err := h.q.Points(c.Request.Context(), owner)
	if err != nil {
		httperr.Abort(c, err, "Failed to load points")
		return
	}
	c.JSON(http.StatusOK, resdto.PointsResponse{UserID: owner.Int64(), Points: points})
}

// @Summary Leaderboard
// @Description Top users by points, ties broken by lower user id
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default from config, max 50)"
// @Success 200 {array} resdto.LeaderboardEntryResponse
// @Router /api/leaderboard [get]
func (h *RewardHandler) Leaderboard(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = v
	}
	entries, err := h.q.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load leaderboard", nil)
		return
	}
	res, err := resdto.FromLeaderboard(entries)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render leaderboard", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
