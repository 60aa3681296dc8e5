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

type KeeperService interface {
	ListKeepers(ctx context.Context, guardianID uint) ([]domain.Keeper, error)
	CreateKeeper(ctx context.Context, guardianID uint, keeper domain.Keeper, relationship string, primaryContact bool) (domain.Keeper, error)
	UpdateKeeper(ctx context.Context, guardianID uint, keeper domain.Keeper) (domain.Keeper, error)
	RetireKeeper(ctx context.Context, guardianID, keeperID uint) error
}

type KeeperHandler struct {
	svc KeeperService
}

func NewKeeperHandler(svc KeeperService) *KeeperHandler {
	return &KeeperHandler{
		svc: svc,
	}
}

// HandleListKeepers godoc
// @Summary      List the guardian's keepers
// @Description  Retired keepers are excluded.
// @Tags         keepers
// @Produce      json
// @Success      200  {array}   domain.Keeper
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /keepers [get]
// @Security BearerAuth
func (h *KeeperHandler) HandleListKeepers(ctx *gin.Context) {
	guardianID, respErr := guardianIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	keepers, err := h.svc.ListKeepers(ctx.Request.Context(), guardianID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListKeepers -> h.svc.ListKeepers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, keepers)
}

// HandleCreateKeeper godoc
// @Summary      Create a keeper
// @Description  Creates the keeper together with its guardianship link in one step.
// @Tags         keepers
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateKeeperRequest  true  "request body"
// @Success      201      {object}  domain.Keeper
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /keepers [post]
// @Security BearerAuth
func (h *KeeperHandler) HandleCreateKeeper(ctx *gin.Context) {
	guardianID, respErr := guardianIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateKeeperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	keeper := domain.Keeper{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    req.ParsedBirthDate(),
		Gender:       req.Gender,
		GloveSize:    req.GloveSize,
		ClothingSize: req.ClothingSize,
		Vegetarian:   req.Vegetarian,
		MedicalNotes: req.MedicalNotes,
	}

	created, err := h.svc.CreateKeeper(ctx.Request.Context(), guardianID, keeper, req.Relationship, req.PrimaryContact)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateKeeper -> h.svc.CreateKeeper -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateKeeper godoc
// @Summary      Update a keeper
// @Tags         keepers
// @Accept       json
// @Produce      json
// @Param        keeperID  path      int                          true  "Keeper ID"
// @Param        request   body      request.UpdateKeeperRequest  true  "request body"
// @Success      200       {object}  domain.Keeper
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /keepers/{keeperID} [put]
// @Security BearerAuth
func (h *KeeperHandler) HandleUpdateKeeper(ctx *gin.Context) {
	guardianID, respErr := guardianIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	keeperID, err := strconv.ParseUint(ctx.Param("keeperID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid keeper ID: %w", err)))
		return
	}

	var req request.UpdateKeeperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	keeper := domain.Keeper{
		ID:           uint(keeperID),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    req.ParsedBirthDate(),
		Gender:       req.Gender,
		GloveSize:    req.GloveSize,
		ClothingSize: req.ClothingSize,
		Vegetarian:   req.Vegetarian,
		MedicalNotes: req.MedicalNotes,
	}

	updated, err := h.svc.UpdateKeeper(ctx.Request.Context(), guardianID, keeper)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrKeeperNotLinked):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrKeeperNotLinked))
		case errors.Is(err, service.ErrKeeperNotFound):
			response.RenderErr(ctx, response.ErrNotFound("keeper", "ID", keeperID))
		default:
			err = fmt.Errorf("v1.HandleUpdateKeeper -> h.svc.UpdateKeeper -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleRetireKeeper godoc
// @Summary      Retire a keeper
// @Description  Soft delete; the keeper disappears from queries but registration history stays intact.
// @Tags         keepers
// @Produce      json
// @Param        keeperID  path  int  true  "Keeper ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /keepers/{keeperID} [delete]
// @Security BearerAuth
func (h *KeeperHandler) HandleRetireKeeper(ctx *gin.Context) {
	guardianID, respErr := guardianIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	keeperID, err := strconv.ParseUint(ctx.Param("keeperID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid keeper ID: %w", err)))
		return
	}

	if err = h.svc.RetireKeeper(ctx.Request.Context(), guardianID, uint(keeperID)); err != nil {
		switch {
		case errors.Is(err, service.ErrKeeperNotLinked):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrKeeperNotLinked))
		case errors.Is(err, service.ErrKeeperNotFound):
			response.RenderErr(ctx, response.ErrNotFound("keeper", "ID", keeperID))
		default:
			err = fmt.Errorf("v1.HandleRetireKeeper -> h.svc.RetireKeeper -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}
