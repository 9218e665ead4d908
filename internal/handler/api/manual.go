package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"museum-booking/internal/domain/manual"
	reqdto "museum-booking/internal/handler/dto/request"
	resdto "museum-booking/internal/handler/dto/response"
	"museum-booking/internal/handler/httperr"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/errs"
	"museum-booking/internal/usecase/manualops"
)

type ManualBookingHandler struct {
	queries  manualops.Queries
	commands manualops.Commands
	clock    clock.Clock
}

func NewManualBookingHandler(queries manualops.Queries, commands manualops.Commands, clk clock.Clock) *ManualBookingHandler {
	return &ManualBookingHandler{queries: queries, commands: commands, clock: clk}
}

// @Summary List manual bookings
// @Tags manual-bookings
// @Produce json
// @Param status query string false "pending or completed"
// @Param limit query int false "Page size (default 50, max 200)"
// @Success 200 {object} resdto.ManualBookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/manual-bookings [get]
func (h *ManualBookingHandler) List(c *gin.Context) {
	var status *manual.Status
	if raw := c.Query("status"); raw != "" {
		s, err := manual.ParseStatus(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
			return
		}
		status = &s
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid limit"), "Invalid limit", nil)
			return
		}
		limit = n
	}

	items, err := h.queries.List(c.Request.Context(), status, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromManualBookings(items, h.clock.Now()))
}

// @Summary Get manual booking
// @Tags manual-bookings
// @Produce json
// @Param id path string true "Manual booking ID"
// @Success 200 {object} resdto.ManualBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/manual-bookings/{id} [get]
func (h *ManualBookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	b, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		abortManualError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromManualBooking(b, h.clock.Now()))
}

// @Summary Complete manual booking
// @Description Backfill the platform's official booking reference once an operator has booked by hand.
// @Tags manual-bookings
// @Accept json
// @Produce json
// @Param id path string true "Manual booking ID"
// @Param request body reqdto.CompleteManualBookingRequest true "Official reference"
// @Success 200 {object} resdto.ManualBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/manual-bookings/{id}/complete [patch]
func (h *ManualBookingHandler) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.CompleteManualBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	b, err := h.commands.Complete(c.Request.Context(), id, req.OfficialReference)
	if err != nil {
		abortManualError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromManualBooking(b, h.clock.Now()))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid manual booking ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortManualError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrManualBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Manual booking not found", nil)
	case errs.Is(err, errs.ErrManualBookingCompleted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Manual booking already completed", nil)
	case errs.Is(err, errs.ErrInvalidOfficialRef):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid official reference", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
