package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/keeperschule/booking-api/internal/api/handler/v1/response"
	"github.com/keeperschule/booking-api/internal/api/middleware"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// guardianIDFromContext returns the authenticated guardian's id, or an
// unauthorized error when no session was established.
func guardianIDFromContext(ctx *gin.Context) (uint, *response.Err) {
	value, ok := ctx.Get(middleware.ContextKeyGuardianID)
	if !ok {
		return 0, response.ErrWrongCredentials(errors.New("no active session"))
	}

	id, ok := value.(uint)
	if !ok || id == 0 {
		return 0, response.ErrWrongCredentials(errors.New("no active session"))
	}

	return id, nil
}
