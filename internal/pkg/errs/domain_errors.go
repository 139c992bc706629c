package errs

// Domain-specific sentinel errors shared across usecase layers
var (
	// Offer errors
	ErrOfferNotFound = New("offer not found")
	ErrSoldOut       = New("offer sold out")

	// Booking errors
	ErrBookingNotFound  = New("booking not found")
	ErrBookingNotActive = New("booking not active")

	// Store errors
	ErrStoreNotFound = New("store not found")

	// Concurrency errors
	ErrTransientConflict = New("transient transaction conflict")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
