package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/keeperschule/booking-api/internal/api/handler/v1/request"
	"github.com/keeperschule/booking-api/internal/api/handler/v1/response"
	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/service"
)

type GuardianService interface {
	GetGuardian(ctx context.Context, id uint) (domain.Guardian, error)
	UpdateContact(ctx context.Context, id uint, contactName, phone string) (domain.Guardian, error)
}

type GuardianHandler struct {
	svc GuardianService
}

func NewGuardianHandler(svc GuardianService) *GuardianHandler {
	return &GuardianHandler{
		svc: svc,
	}
}

// HandleGetProfile godoc
// @Summary      Get the authenticated guardian's profile
// @Tags         guardians
// @Produce      json
// @Success      200  {object}  domain.Guardian
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /profile [get]
// @Security BearerAuth
func (h *GuardianHandler) HandleGetProfile(ctx *gin.Context) {
	guardianID, respErr := guardianIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	guardian, err := h.svc.GetGuardian(ctx.Request.Context(), guardianID)
	if err != nil {
		if errors.Is(err, service.ErrGuardianNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("guardian", "ID", guardianID))
			return
		}

		err = fmt.Errorf("v1.HandleGetProfile -> h.svc.GetGuardian -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, guardian)
}

// HandleUpdateContact godoc
// @Summary      Update the guardian's contact data
// @Description  The contact data is snapshotted onto registration headers at creation time.
// @Tags         guardians
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpdateContactRequest  true  "request body"
// @Success      200      {object}  domain.Guardian
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /profile [put]
// @Security BearerAuth
func (h *GuardianHandler) HandleUpdateContact(ctx *gin.Context) {
	guardianID, respErr := guardianIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	guardian, err := h.svc.UpdateContact(ctx.Request.Context(), guardianID, req.ContactName, req.Phone)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateContact -> h.svc.UpdateContact -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, guardian)
}
