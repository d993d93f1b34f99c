package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// Codes are logged alongside the user-facing flash text.

const (
	// Validation
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// Resources
	ResourceNotFound = "RESOURCE_NOT_FOUND"
	VenueNotFound    = "VENUE_NOT_FOUND"
	ArtistNotFound   = "ARTIST_NOT_FOUND"
	ShowNotFound     = "SHOW_NOT_FOUND"

	// Shows reference exactly one artist and one venue
	ShowInvalidReference = "SHOW_INVALID_REFERENCE"

	// Internal
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
