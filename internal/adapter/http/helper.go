package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	bathDomain "petshop-backend/internal/domain/bath"
	journeyDomain "petshop-backend/internal/domain/journey"
	petDomain "petshop-backend/internal/domain/pet"
	bathUC "petshop-backend/internal/usecase/bath"
)

// writeDomainErr maps domain errors to HTTP codes. Anything unmapped
// is a 500 with a generic body; the detail goes to the log only.
func writeDomainErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, bathDomain.ErrNotFound),
		errors.Is(err, petDomain.ErrNotFound),
		errors.Is(err, journeyDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, bathDomain.ErrRevisionConflict),
		errors.Is(err, bathDomain.ErrAlreadyApproved),
		errors.Is(err, bathDomain.ErrAlreadyLinked):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, petDomain.ErrInactive):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, bathUC.ErrMissingField):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("http: internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
