//go:build unit

package httperr_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"premium-reconciler/internal/domain/reward"
	"premium-reconciler/internal/handler/httperr"
	"premium-reconciler/internal/infra"
	"premium-reconciler/internal/pkg/errs"
	"premium-reconciler/internal/usecase/commands"
	"premium-reconciler/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "code space exhausted is retryable",
			err:         errs.Wrap(commands.ErrCodeSpaceExhausted, "create order"),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    "CODE_SPACE_EXHAUSTED",
			wantMessage: "Could not allocate an order code, try again",
		},
		{
			name:        "marked sentinel is recognized",
			err:         errs.Mark(errors.New("tx aborted"), queries.ErrNoPendingOrder),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NO_PENDING_ORDER",
			wantMessage: "No pending order",
		},
		{
			name:        "zero delta",
			err:         reward.ErrZeroDelta,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "ZERO_DELTA",
			wantMessage: "Delta must be non-zero",
		},
		{
			name:        "deadline",
			err:         errs.Wrap(context.DeadlineExceeded, "fetch"),
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    "TIMEOUT",
			wantMessage: "Request timed out",
		},
		{
			name:        "repository not found",
			err:         infra.WrapRepoErr("user not found", nil, infra.KindNotFound),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Not found",
		},
		{
			name:        "constraint violation is a conflict",
			err:         infra.WrapRepoErr("check failed", nil, infra.KindConstraintViolated),
			wantStatus:  http.StatusConflict,
			wantCode:    "CONFLICT",
			wantMessage: "Conflicting request, try again",
		},
		{
			name:        "unknown error keeps fallback",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Claim failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := httperr.FromError(tt.err, "Claim failed")

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCode, got.Error.Code)
			assert.Equal(t, tt.wantMessage, got.Error.Message)
		})
	}
}
