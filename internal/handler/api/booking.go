package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"museum-booking/internal/domain/timing"
	reqdto "museum-booking/internal/handler/dto/request"
	resdto "museum-booking/internal/handler/dto/response"
	"museum-booking/internal/handler/httperr"
	"museum-booking/internal/handler/middleware"
	"museum-booking/internal/pkg/errs"
	bookingusecase "museum-booking/internal/usecase/booking"
)

type TimingSource interface {
	Status() timing.Status
}

type BookingHandler struct {
	commands bookingusecase.Commands
	timing   TimingSource
}

func NewBookingHandler(commands bookingusecase.Commands, timing TimingSource) *BookingHandler {
	return &BookingHandler{commands: commands, timing: timing}
}

// @Summary Attempt booking
// @Description Run the escalation chain for one visitor request. A result is always returned; manual hand-offs carry operator instructions.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.AttemptBookingRequest true "Booking request"
// @Success 200 {object} resdto.AttemptResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/bookings/attempt [post]
func (h *BookingHandler) Attempt(c *gin.Context) {
	var req reqdto.AttemptBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	outcome, err := h.commands.AttemptBooking(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidBookingRequest):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", gin.H{"reason": err.Error()})
		case errs.Is(err, errs.ErrOrchestrationAbandoned):
			httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Booking is still in progress", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	middleware.AddLogAttrs(c,
		slog.String("museum", string(req.Museum)),
		slog.String("provenance", outcome.Result.Provenance().String()),
		slog.Bool("success", outcome.Result.Success()),
	)
	c.JSON(http.StatusOK, resdto.FromAttemptOutcome(outcome))
}

// @Summary Release window status
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.TimingResponse
// @Router /api/timing [get]
func (h *BookingHandler) Timing(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromTimingStatus(h.timing.Status()))
}
