package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/keeperschule/booking-api/internal/api/handler/v1/request"
	"github.com/keeperschule/booking-api/internal/api/handler/v1/response"
	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/service"
)

type RegistrationService interface {
	Page(ctx context.Context, guardianID uint, kind domain.EventKind) (service.Overview, error)
	Save(ctx context.Context, guardianID uint, kind domain.EventKind, selections map[uint]map[uint]bool) (service.Overview, error)
	AdminSetStatus(ctx context.Context, participationID uint, status domain.Status) (domain.ParticipationRecord, error)
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// HandleGetRegistrations godoc
// @Summary      Get the registration matrix for one event kind
// @Description  Open events, the guardian's keepers, and the derived checkbox state.
// @Tags         registrations
// @Produce      json
// @Param        kind  query     string  true  "Event kind"  Enums(weekly_training, camp, keeper_day)
// @Success      200   {object}  response.RegistrationPageResponse
// @Failure      400   {object}  response.Err
// @Failure      401   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /registrations [get]
// @Security BearerAuth
func (h *RegistrationHandler) HandleGetRegistrations(ctx *gin.Context) {
	guardianID, renderErr := guardianIDFromContext(ctx)
	if renderErr != nil {
		response.RenderErr(ctx, renderErr)
		return
	}

	kind := domain.EventKind(ctx.Query("kind"))
	if !kind.Valid() {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event kind %q", kind)))
		return
	}

	overview, err := h.svc.Page(ctx.Request.Context(), guardianID, kind)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRegistrations -> h.svc.Page -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewRegistrationPageResponse(overview))
}

// HandleSaveRegistrations godoc
// @Summary      Save the registration matrix for one event kind
// @Description  Reconciles the submitted checkbox matrix against persisted registrations and returns the reloaded state. Saving an unchanged matrix is a no-op.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        kind     query     string                        true  "Event kind"  Enums(weekly_training, camp, keeper_day)
// @Param        request  body      request.SaveSelectionsRequest  true  "Selection matrix"
// @Success      200      {object}  response.RegistrationPageResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /registrations [put]
// @Security BearerAuth
func (h *RegistrationHandler) HandleSaveRegistrations(ctx *gin.Context) {
	guardianID, renderErr := guardianIDFromContext(ctx)
	if renderErr != nil {
		response.RenderErr(ctx, renderErr)
		return
	}

	kind := domain.EventKind(ctx.Query("kind"))
	if !kind.Valid() {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event kind %q", kind)))
		return
	}

	req := request.SaveSelectionsRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	overview, err := h.svc.Save(ctx.Request.Context(), guardianID, kind, req.Matrix())
	if err != nil {
		err = fmt.Errorf("v1.HandleSaveRegistrations -> h.svc.Save -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewRegistrationPageResponse(overview))
}

// HandleAdminSetStatus godoc
// @Summary      Set the status of one participation record
// @Description  Administrator override for the registration workflow, including confirming and un-confirming records.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        participationID  path      int                           true  "Participation ID"
// @Param        request          body      request.AdminSetStatusRequest  true  "New status"
// @Success      200              {object}  domain.ParticipationRecord
// @Failure      400              {object}  response.Err
// @Failure      401              {object}  response.Err
// @Failure      403              {object}  response.Err
// @Failure      404              {object}  response.Err
// @Failure      500              {object}  response.Err
// @Router       /admin/participations/{participationID} [patch]
// @Security BearerAuth
func (h *RegistrationHandler) HandleAdminSetStatus(ctx *gin.Context) {
	participationID, err := strconv.ParseUint(ctx.Param("participationID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid participation ID: %w", err)))
		return
	}

	req := request.AdminSetStatusRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	record, err := h.svc.AdminSetStatus(ctx.Request.Context(), uint(participationID), domain.ParseStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrParticipationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participation", "ID", participationID))
			return
		}

		err = fmt.Errorf("v1.HandleAdminSetStatus -> h.svc.AdminSetStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, record)
}
