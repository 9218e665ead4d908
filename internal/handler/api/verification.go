package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"museum-booking/internal/domain/booking"
	reqdto "museum-booking/internal/handler/dto/request"
	resdto "museum-booking/internal/handler/dto/response"
	"museum-booking/internal/handler/httperr"
	"museum-booking/internal/pkg/errs"
	"museum-booking/internal/usecase/verification"
)

type VerificationHandler struct {
	service verification.Service
}

func NewVerificationHandler(service verification.Service) *VerificationHandler {
	return &VerificationHandler{service: service}
}

// @Summary Verify booking
// @Description Look a booking up on the platform and record the attempt. Found never reverts once seen.
// @Tags verifications
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyBookingRequest true "Booking to verify"
// @Success 200 {object} resdto.VerificationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/verifications [post]
func (h *VerificationHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	target := req.ToTarget()
	if !booking.ValidIDCardNumber(target.IDNumber) {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrInvalidIDNumber, "Invalid ID number", nil)
		return
	}

	rec := h.service.Check(c.Request.Context(), target)
	c.JSON(http.StatusOK, resdto.FromVerificationRecord(rec))
}

// @Summary Get verification record
// @Tags verifications
// @Produce json
// @Param bookingId path string true "Platform booking ID"
// @Success 200 {object} resdto.VerificationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/verifications/{bookingId} [get]
func (h *VerificationHandler) Get(c *gin.Context) {
	bookingID := strings.TrimSpace(c.Param("bookingId"))
	rec, err := h.service.Get(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrVerificationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Verification record not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromVerificationRecord(rec))
}
