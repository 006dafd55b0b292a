package httperr

import (
	"context"
	"net/http"

	"premium-reconciler/internal/domain/reward"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	"premium-reconciler/internal/pkg/errs"
	"premium-reconciler/internal/usecase/commands"
	"premium-reconciler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type rule struct {
	target  error
	status  int
	code    string
	message string
}

// First match wins. An empty message keeps the caller's fallback.
var rules = []rule{
	{commands.ErrCodeSpaceExhausted, http.StatusServiceUnavailable, "CODE_SPACE_EXHAUSTED", "Could not allocate an order code, try again"},
	{commands.ErrEmptyBroadcast, http.StatusBadRequest, "EMPTY_BROADCAST", "Text is empty"},
	{queries.ErrNoPendingOrder, http.StatusNotFound, "NO_PENDING_ORDER", "No pending order"},
	{queries.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND", "User not found"},
	{reward.ErrZeroDelta, http.StatusBadRequest, "ZERO_DELTA", "Delta must be non-zero"},
	{user.ErrInvalidUsername, http.StatusBadRequest, "INVALID_PROFILE", "Invalid profile"},
	{user.ErrInvalidID, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user id"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "TIMEOUT", "Request timed out"},
}

// FromError resolves the public response for err. Unknown errors become a
// 500 carrying fallback.
func FromError(err error, fallback string) Response {
	resp := Response{Status: http.StatusInternalServerError}
	resp.Error.Message = fallback

	for _, r := range rules {
		if errs.Is(err, r.target) {
			resp.Status = r.status
			resp.Error.Code = r.code
			if r.message != "" {
				resp.Error.Message = r.message
			}
			return resp
		}
	}

	switch {
	case infra.IsKind(err, infra.KindNotFound):
		resp.Status = http.StatusNotFound
		resp.Error.Code = string(infra.KindNotFound)
		resp.Error.Message = "Not found"
	case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindConstraintViolated):
		resp.Status = http.StatusConflict
		resp.Error.Code = "CONFLICT"
		resp.Error.Message = "Conflicting request, try again"
	}
	return resp
}

// Abort classifies err with FromError and aborts with the result.
func Abort(c *gin.Context, err error, fallback string) {
	resp := FromError(err, fallback)
	abort(c, err, resp)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	abort(c, err, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
