//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"premium-reconciler/internal/domain/entitlement"
	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/domain/payment"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/handler/api"
	resdto "premium-reconciler/internal/handler/dto/response"
	"premium-reconciler/internal/pkg/errs"
	"premium-reconciler/internal/testutil/httptest"
	commandsmock "premium-reconciler/internal/testutil/mock/commands"
	queriesmock "premium-reconciler/internal/testutil/mock/queries"
	"premium-reconciler/internal/usecase/commands"
	"premium-reconciler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testDestination = "EQTestDestination"

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// fakeAuth stands in for RequireAuth: any Authorization header passes.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("subject", "test-frontend")
	c.Next()
}

type OrderHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockOrderCommands
	mockQueries      *queriesmock.MockOrderQueries
	mockEntitlements *queriesmock.MockEntitlementQueries
	price            order.Amount
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.mockEntitlements = queriesmock.NewMockEntitlementQueries(s.mockCtrl)

	price, err := order.NewAmount(decimal.RequireFromString("1.5"))
	s.Require().NoError(err)
	s.price = price

	h := api.NewOrderHandler(s.mockCommands, s.mockQueries, s.mockEntitlements, payment.Settings{
		Destination: testDestination,
		Price:       price,
		GrantPeriod: 30 * 24 * time.Hour,
		Retention:   24 * time.Hour,
	})

	s.router.POST("/users/:owner/orders", fakeAuth, h.Create)
	s.router.GET("/users/:owner/orders", fakeAuth, h.Recent)
	s.router.GET("/users/:owner/orders/pending", fakeAuth, h.Pending)
	s.router.POST("/users/:owner/orders/verify", fakeAuth, h.Verify)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) newOrder(owner user.ID) *order.Order {
	code, err := order.NewCode("BHEK-7-AB12")
	s.Require().NoError(err)
	o, err := order.NewOrder(owner, code, s.price, testNow)
	s.Require().NoError(err)
	return o
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreate() {
	s.Run("success: charges the configured price and returns links", func() {
		owner := user.ID(7)
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), owner, s.price).
			Return(s.newOrder(owner), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/7/orders", nil, "token")

		var body resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("BHEK-7-AB12", body.Order.Code)
		s.Equal("1.5", body.Order.AmountTON)
		s.Equal("PENDING", body.Order.Status)
		s.Equal(testDestination, body.Instructions.Destination)
		s.Equal("ton://transfer/EQTestDestination?amount=1500000000&text=BHEK-7-AB12", body.Instructions.Links.Native)
		s.Equal("https://tonviewer.com/EQTestDestination", body.Instructions.Links.Explorer)
	})

	s.Run("error: 400 for a non-numeric owner", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/abc/orders", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user id")
	})

	s.Run("error: 400 for owner zero", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/0/orders", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user id")
	})

	s.Run("error: 503 when no fresh code could be reserved", func() {
		err := errs.Mark(errs.Wrap(commands.ErrCodeSpaceExhausted, "reserve"), commands.ErrOrderCreation)
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/7/orders", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "order code")
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/7/orders", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Create order failed")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/7/orders", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestRecent
// ================================================================================

func (s *OrderHandlerTestSuite) TestRecent() {
	views := []*queries.OrderView{
		{ID: uuid.New(), Owner: 7, Code: "BHEK-7-0002", AmountTON: decimal.NewFromInt(1), Status: "PENDING", CreatedAt: testNow},
		{ID: uuid.New(), Owner: 7, Code: "BHEK-7-0001", AmountTON: decimal.NewFromInt(1), Status: "EXPIRED", CreatedAt: testNow.Add(-48 * time.Hour)},
	}

	s.Run("success: passes the limit through", func() {
		s.mockQueries.EXPECT().RecentForOwner(gomock.Any(), user.ID(7), 2).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/7/orders?limit=2", nil, "token")

		var body []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("BHEK-7-0002", body[0].Code)
		s.Equal(testNow.Unix(), body[0].CreatedAt)
		s.Nil(body[1].ConfirmedAt)
	})

	s.Run("success: no limit means the default", func() {
		s.mockQueries.EXPECT().RecentForOwner(gomock.Any(), user.ID(7), 0).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/7/orders", nil, "token")

		var body []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 for a malformed limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/7/orders?limit=ten", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}

// ================================================================================
// TestPending
// ================================================================================

func (s *OrderHandlerTestSuite) TestPending() {
	s.Run("success: returns instructions", func() {
		instructions := &queries.PaymentInstructions{
			OrderID:     uuid.New(),
			Code:        "BHEK-7-AB12",
			AmountTON:   decimal.RequireFromString("1.5"),
			Destination: testDestination,
			Links:       payment.BuildLinks(testDestination, s.price, order.Code{}),
		}
		s.mockQueries.EXPECT().PendingInstructions(gomock.Any(), user.ID(7)).Return(instructions, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/7/orders/pending", nil, "token")

		var body resdto.PaymentInstructionsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("BHEK-7-AB12", body.Code)
		s.Equal(testDestination, body.Destination)
	})

	s.Run("error: 404 without a pending order", func() {
		s.mockQueries.EXPECT().PendingInstructions(gomock.Any(), user.ID(7)).
			Return(nil, queries.ErrNoPendingOrder).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/7/orders/pending", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No pending order")
	})
}

// ================================================================================
// TestVerify
// ================================================================================

func (s *OrderHandlerTestSuite) TestVerify() {
	until := testNow.Add(30 * 24 * time.Hour)

	tests := []struct {
		name         string
		status       entitlement.Status
		statusErr    error
		wantVerified bool
		wantState    string
		wantMessage  string
	}{
		{
			name:         "active entitlement verifies",
			status:       entitlement.Status{State: entitlement.StateActive, ActiveUntil: &until},
			wantVerified: true,
			wantState:    "active",
			wantMessage:  "Payment verified",
		},
		{
			name:        "inactive reads as not yet",
			status:      entitlement.Status{State: entitlement.StateInactive},
			wantState:   "inactive",
			wantMessage: "try again",
		},
		{
			name:        "storage failure still answers 200",
			statusErr:   errors.New("timeout"),
			wantState:   "inactive",
			wantMessage: "try again",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockEntitlements.EXPECT().Status(gomock.Any(), user.ID(7)).Return(tt.status, tt.statusErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/7/orders/verify", nil, "token")

			var body resdto.VerifyPaymentResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(tt.wantVerified, body.Verified)
			s.Equal(tt.wantState, body.Entitlement.State)
			s.Contains(body.Message, tt.wantMessage)
		})
	}
}
