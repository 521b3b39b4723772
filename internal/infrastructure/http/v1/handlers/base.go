package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizreport/internal/core/apperror"
	appctx "bizreport/internal/core/context"
	"bizreport/internal/core/id"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// Error registers err on the Gin context and aborts the request.
// The JSON response is produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// OwnerID returns the authenticated owner from the request context.
func (h *BaseHandler) OwnerID(c *gin.Context) (id.ID, error) {
	user := appctx.GetUser(c.Request.Context())
	if user == nil {
		return id.Nil, apperror.NewUnauthorized("authentication required")
	}
	ownerID, err := id.Parse(user.OwnerID)
	if err != nil || id.IsNil(ownerID) {
		return id.Nil, apperror.NewValidation("invalid owner id").WithDetail("owner_id", user.OwnerID)
	}
	return ownerID, nil
}

// OK sends 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
