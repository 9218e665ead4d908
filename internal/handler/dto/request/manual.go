package request

type CompleteManualBookingRequest struct {
	OfficialReference string `json:"officialReference" binding:"required"`
}
