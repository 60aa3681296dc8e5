package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/keeperschule/booking-api/internal/api/handler/v1/response"
	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/service"
)

type CatalogService interface {
	ListOpenEvents(ctx context.Context, kind domain.EventKind) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
}

type EventHandler struct {
	svc CatalogService
}

func NewEventHandler(svc CatalogService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List open events of one kind
// @Description  Upcoming events that are open for registration, ordered by start date.
// @Tags         events
// @Produce      json
// @Param        kind  query     string  true  "Event kind"  Enums(weekly_training, camp, keeper_day)
// @Success      200   {array}   domain.Event
// @Failure      400   {object}  response.Err
// @Failure      401   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /events [get]
// @Security BearerAuth
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	kind := domain.EventKind(ctx.Query("kind"))
	if !kind.Valid() {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event kind %q", kind)))
		return
	}

	events, err := h.svc.ListOpenEvents(ctx.Request.Context(), kind)
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListOpenEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get one event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), uint(eventID))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}
