package permit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portico/internal/application/permit/usecases"
	"portico/internal/interfaces/http/middleware"
	"portico/internal/shared/errors"
	"portico/internal/shared/logger"
	"portico/internal/shared/utils"
)

// Handler exposes the entry permission HTTP surface.
type Handler struct {
	createUC    usecases.CreatePermitExecutor
	getUC       usecases.GetPermitExecutor
	updateUC    usecases.UpdatePermitExecutor
	toggleUC    usecases.TogglePermitExecutor
	checkInUC   usecases.CheckInExecutor
	checkOutUC  usecases.CheckOutExecutor
	gateCheckUC usecases.GateCheckExecutor
	listUC      usecases.ListPermitsExecutor
	logger      logger.Interface
}

func NewHandler(
	createUC usecases.CreatePermitExecutor,
	getUC usecases.GetPermitExecutor,
	updateUC usecases.UpdatePermitExecutor,
	toggleUC usecases.TogglePermitExecutor,
	checkInUC usecases.CheckInExecutor,
	checkOutUC usecases.CheckOutExecutor,
	gateCheckUC usecases.GateCheckExecutor,
	listUC usecases.ListPermitsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:    createUC,
		getUC:       getUC,
		updateUC:    updateUC,
		toggleUC:    toggleUC,
		checkInUC:   checkInUC,
		checkOutUC:  checkOutUC,
		gateCheckUC: gateCheckUC,
		listUC:      listUC,
		logger:      logger,
	}
}

// CreatePermit handles POST /entry-permissions
func (h *Handler) CreatePermit(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	var req CreatePermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create permit", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.CreatePermitCommand{
		PermissionType: req.PermissionType,
		Description:    req.Description,
		VisitID:        req.VisitID,
		ResidentID:     req.ResidentID,
		OrderID:        req.OrderID,
		Actor:          actor,
	}
	if req.ValidFrom != nil {
		cmd.ValidFrom = *req.ValidFrom
	}
	if req.ValidUntil != nil {
		cmd.ValidUntil = *req.ValidUntil
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Entry permission created successfully")
}

// GetPermit handles GET /entry-permissions/:id
func (h *Handler) GetPermit(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	permitID, err := parsePermitID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetPermitQuery{
		PermitID: permitID,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdatePermit handles PUT /entry-permissions/:id. Absent fields are left
// untouched.
func (h *Handler) UpdatePermit(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	permitID, err := parsePermitID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update permit", "permit_id", permitID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.UpdatePermitCommand{
		PermitID:       permitID,
		Description:    req.Description,
		PermissionType: req.PermissionType,
		ValidFrom:      req.ValidFrom,
		ValidUntil:     req.ValidUntil,
		EntryTime:      req.EntryTime,
		DepartureTime:  req.DepartureTime,
		OrderID:        req.OrderID,
		Actor:          actor,
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Entry permission updated successfully", result)
}

// TogglePermit handles PATCH /entry-permissions/:id/soft-delete. The permit
// is deactivated rather than removed; a second call reactivates it.
func (h *Handler) TogglePermit(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	permitID, err := parsePermitID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleUC.Execute(c.Request.Context(), usecases.TogglePermitCommand{
		PermitID: permitID,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Entry permission lifecycle toggled", result)
}

// CheckIn handles PATCH /entry-permissions/:id/checkin
func (h *Handler) CheckIn(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	permitID, err := parsePermitID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkInUC.Execute(c.Request.Context(), usecases.CheckInCommand{
		PermitID: permitID,
		Guard:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Entry registered", result)
}

// CheckOut handles PATCH /entry-permissions/:id/checkout
func (h *Handler) CheckOut(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	permitID, err := parsePermitID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkOutUC.Execute(c.Request.Context(), usecases.CheckOutCommand{
		PermitID: permitID,
		Guard:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Exit registered", result)
}

// GateCheck handles GET /entry-permissions/validate. The verdict is
// advisory; registering the actual movement is a separate call.
func (h *Handler) GateCheck(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("code query parameter is required"))
		return
	}

	result, err := h.gateCheckUC.Execute(c.Request.Context(), usecases.GateCheckQuery{
		Code: code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPermits handles GET /entry-permissions
func (h *Handler) ListPermits(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	params, err := parseListPermitsParams(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListPermitsQuery{
		ResidentID:     params.ResidentID,
		VisitID:        params.VisitID,
		OrderID:        params.OrderID,
		PermissionType: params.PermissionType,
		Status:         params.Status,
		Lifecycle:      params.Lifecycle,
		From:           params.From,
		To:             params.To,
		Page:           params.Page,
		PageSize:       params.PageSize,
		SortBy:         params.SortBy,
		SortOrder:      params.SortOrder,
		Actor:          actor,
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Permits, result.TotalCount, params.Page, params.PageSize)
}
