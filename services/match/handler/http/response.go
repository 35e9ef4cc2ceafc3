package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/musafir-app/musafir/internal/utils"
	"github.com/musafir-app/musafir/services/match"
)

// domainErrorResponse maps domain errors onto HTTP statuses. Anything
// unrecognized is an internal error with the detail kept out of the body.
func domainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, match.ErrInvalidIntent):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, match.ErrNoActiveIntent):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, match.ErrStoreUnavailable):
		return utils.ServiceUnavailableResponse(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return utils.ServiceUnavailableResponse(c, "request timed out")
	case errors.Is(err, match.ErrScoringInvariant):
		return utils.InternalServerErrorResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "internal server error")
	}
}
