package api

import (
	"net/http"
	"strconv"

	"premium-reconciler/internal/domain/entitlement"
	"premium-reconciler/internal/domain/payment"
	resdto "premium-reconciler/internal/handler/dto/response"
	"premium-reconciler/internal/handler/httperr"
	"premium-reconciler/internal/usecase/commands"
	"premium-reconciler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgVerified    = "Payment verified, premium is active."
	msgNotVerified = "Could not verify the payment yet. Please try again in a few seconds."
)

type OrderHandler struct {
	cmds         commands.OrderCommands
	q            queries.OrderQueries
	entitlements queries.EntitlementQueries
	settings     payment.Settings
}

func NewOrderHandler(
	cmds commands.OrderCommands,
	q queries.OrderQueries,
	entitlements queries.EntitlementQueries,
	settings payment.Settings,
) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q, entitlements: entitlements, settings: settings}
}

// @Summary Create premium order
// @Description Replace any pending order of the user with a fresh one at the configured price
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param owner path int true "User ID"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/users/{owner}/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	owner, ok := ownerParam(c)
	if !ok {
		return
	}

	o, err := h.cmds.CreateOrder(c.Request.Context(), owner, h.settings.Price)
	if err != nil {
		httperr.Abort(c, err, "Create order failed")
		return
	}

	view := queries.ToOrderView(o)
	instructions, err := queries.InstructionsFor(h.settings.Destination, view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build payment instructions", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateOrderResponse{
		Order:        resdto.FromOrderView(view),
		Instructions: resdto.FromPaymentInstructions(instructions),
	})
}

// @Summary Recent orders
// @Description List the user's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param owner path int true "User ID"
// @Param limit query int false "Max items (default 5, max 50)"
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Router /api/users/{owner}/orders [get]
func (h *OrderHandler) Recent(c *gin.Context) {
	owner, ok := ownerParam(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = v
	}

	views, err := h.q.RecentForOwner(c.Request.Context(), owner, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to load orders")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Pending order instructions
// @Description Payment instructions for the user's pending order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param owner path int true "User ID"
// @Success 200 {object} resdto.PaymentInstructionsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/users/{owner}/orders/pending [get]
func (h *OrderHandler) Pending(c *gin.Context) {
	owner, ok := ownerParam(c)
	if !ok {
		return
	}

	instructions, err := h.q.PendingInstructions(c.Request.Context(), owner)
	if err != nil {
		httperr.Abort(c, err, "Failed to load pending order")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentInstructions(instructions))
}

// @Summary Verify payment
// @Description Report whether the user's payment has been reconciled. Never fails on "not yet".
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param owner path int true "User ID"
// @Success 200 {object} resdto.VerifyPaymentResponse
// @Router /api/users/{owner}/orders/verify [post]
func (h *OrderHandler) Verify(c *gin.Context) {
	owner, ok := ownerParam(c)
	if !ok {
		return
	}

	status, err := h.entitlements.Status(c.Request.Context(), owner)
	if err != nil {
		// Verification is advisory; a storage hiccup reads as "not yet".
		c.JSON(http.StatusOK, resdto.VerifyPaymentResponse{
			Message:     msgNotVerified,
			Entitlement: resdto.FromEntitlementStatus(entitlement.Status{State: entitlement.StateInactive}),
		})
		_ = c.Error(err)
		return
	}

	res := resdto.VerifyPaymentResponse{
		Verified:    status.IsActive(),
		Message:     msgNotVerified,
		Entitlement: resdto.FromEntitlementStatus(status),
	}
	if res.Verified {
		res.Message = msgVerified
	}
	c.JSON(http.StatusOK, res)
}
