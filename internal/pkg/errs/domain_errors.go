package errs

// Sentinel errors shared by usecase and handler layers
var (
	// Booking request errors
	ErrInvalidBookingRequest = New("invalid booking request")

	// Orchestration errors
	ErrOrchestrationAbandoned = New("caller stopped waiting for booking attempt")
	ErrNoTerminalStrategy     = New("strategy registry has no terminal strategy")

	// Manual booking errors
	ErrManualBookingNotFound  = New("manual booking not found")
	ErrManualBookingCompleted = New("manual booking already completed")
	ErrInvalidOfficialRef     = New("invalid official reference")

	// Verification errors
	ErrVerificationNotFound = New("verification record not found")
	ErrInvalidIDNumber      = New("invalid id number")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
