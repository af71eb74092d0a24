package cli

import (
	"errors"
	"sort"
	"strings"

	"github.com/dmitrijs2005/storerating/internal/client/client"
	"github.com/dmitrijs2005/storerating/internal/client/rating"
	"github.com/dmitrijs2005/storerating/internal/client/screens"
	"github.com/dmitrijs2005/storerating/internal/client/validate"
	"github.com/dmitrijs2005/storerating/internal/common"
)

// describeError turns a handler error into the text shown to the user.
// Errors the user was already told about map to "".
func describeError(err error) string {
	if err == nil {
		return ""
	}

	if ve, ok := validate.Lookup(err); ok {
		fields := make([]string, 0, len(ve))
		for f := range ve {
			fields = append(fields, f)
		}
		sort.Strings(fields)

		var b strings.Builder
		b.WriteString("Please fix the following:")
		for _, f := range fields {
			b.WriteString("\n  " + f + ": " + ve[f])
		}
		return b.String()
	}

	var apiErr *client.APIError
	switch {
	case errors.Is(err, screens.ErrStale), client.IsAuthError(err):
		// sessionExpired has already reported it
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, please try again later."
	case errors.Is(err, common.ErrBusy):
		return "Request already in progress, please wait."
	case errors.Is(err, common.ErrNotAuthenticated):
		return "Please log in first."
	case errors.Is(err, rating.ErrNoRating):
		return "Please select a rating."
	case errors.Is(err, rating.ErrOutOfRange):
		return "Rating must be between 1 and 5."
	}
	return "Error: " + err.Error()
}
