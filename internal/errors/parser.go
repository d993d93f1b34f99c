package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo carries an error code plus the user-facing message shown in a
// flash banner or error page.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts a data-access error into a code and a message safe to
// show to the user. The context string names the entity or operation the
// caller was working on.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Something went wrong",
		}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundInfo(context)
	}

	// PostgreSQL constraint violations

	// Foreign key (23503): a show pointing at a missing artist or venue
	if strings.Contains(errStr, "foreign key constraint") {
		return ErrorInfo{
			Code:    ShowInvalidReference,
			Message: "The referenced artist or venue does not exist",
		}
	}

	// Not null (23502)
	if strings.Contains(errStr, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	// Unique (23505)
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return ErrorInfo{
			Code:    ValidationInvalidInput,
			Message: "A record with these values already exists",
		}
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "The database is unreachable. Please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "Something went wrong. Please try again later",
	}
}

func notFoundInfo(context string) ErrorInfo {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "venue") {
		return ErrorInfo{Code: VenueNotFound, Message: "Venue not found"}
	}
	if strings.Contains(contextLower, "artist") {
		return ErrorInfo{Code: ArtistNotFound, Message: "Artist not found"}
	}
	if strings.Contains(contextLower, "show") {
		return ErrorInfo{Code: ShowNotFound, Message: "Show not found"}
	}

	return ErrorInfo{Code: ResourceNotFound, Message: "The requested record was not found"}
}
