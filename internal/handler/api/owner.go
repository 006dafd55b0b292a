package api

import (
	"net/http"

	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ownerParam reads :owner, aborting with 400 when it is not a positive id.
func ownerParam(c *gin.Context) (user.ID, bool) {
	owner, err := user.ParseID(c.Param("owner"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return 0, false
	}
	return owner, true
}
