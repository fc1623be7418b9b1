package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petshop-backend/internal/adapter/middleware"
	integrationUC "petshop-backend/internal/usecase/integration"
	"petshop-backend/pkg/id"
)

type IntegrationHandler struct{ uc *integrationUC.Usecase }

func NewIntegrationHandler(uc *integrationUC.Usecase) *IntegrationHandler {
	return &IntegrationHandler{uc: uc}
}

type linkReq struct {
	PetID string `json:"pet_id" validate:"required,hex32"`
}

func (h *IntegrationHandler) ApproveWithIntegration(c echo.Context) error {
	operator := c.Request().Header.Get(middleware.HeaderOperatorID)
	if !id.IsID32(operator) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + middleware.HeaderOperatorID})
	}
	var req linkReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := h.uc.ApproveWithIntegration(c.Request().Context(), integrationUC.LinkInput{
		BathID:     c.Param("bath_id"),
		PetID:      req.PetID,
		ApprovedBy: operator,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *IntegrationHandler) Preview(c echo.Context) error {
	p, err := h.uc.GeneratePreview(c.Request().Context(), c.Param("bath_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *IntegrationHandler) Status(c echo.Context) error {
	linked, err := h.uc.IsIntegrated(c.Request().Context(), c.Param("bath_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"integrated": linked})
}

func (h *IntegrationHandler) RemoveIntegration(c echo.Context) error {
	if err := h.uc.RemoveIntegration(c.Request().Context(), c.Param("bath_id")); err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"integrated": false})
}

func (h *IntegrationHandler) ListPets(c echo.Context) error {
	pets, err := h.uc.ListAvailablePets(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"pets": pets})
}
