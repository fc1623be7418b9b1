package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petshop-backend/internal/adapter/middleware"
	bathUC "petshop-backend/internal/usecase/bath"
	"petshop-backend/pkg/id"
)

type BathHandler struct{ uc *bathUC.Usecase }

func NewBathHandler(uc *bathUC.Usecase) *BathHandler { return &BathHandler{uc: uc} }

type createBathReq struct {
	PetName      string `json:"pet_name"      validate:"required"`
	ImageURL     string `json:"image_url"     validate:"required,url"`
	ImagePath    string `json:"image_path"    validate:"required"`
	BathDate     string `json:"bath_date"     validate:"required,datetime=2006-01-02"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
	CuratorNotes string `json:"curator_notes"`
}

type updateBathReq struct {
	Revision     *int64  `json:"revision"      validate:"required"`
	PetName      *string `json:"pet_name"`
	ImageURL     *string `json:"image_url"     validate:"omitempty,url"`
	ImagePath    *string `json:"image_path"`
	BathDate     *string `json:"bath_date"     validate:"omitempty,datetime=2006-01-02"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
	CuratorNotes *string `json:"curator_notes"`
}

func (h *BathHandler) CreateBath(c echo.Context) error {
	var req createBathReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), bathUC.CreateBathInput{
		PetName:      req.PetName,
		ImageURL:     req.ImageURL,
		ImagePath:    req.ImagePath,
		BathDate:     req.BathDate,
		DisplayOrder: req.DisplayOrder,
		CuratorNotes: req.CuratorNotes,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BathHandler) GetBath(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("bath_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BathHandler) UpdateBath(c echo.Context) error {
	var req updateBathReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), bathUC.UpdateBathInput{
		BathID:       c.Param("bath_id"),
		Revision:     *req.Revision,
		PetName:      req.PetName,
		ImageURL:     req.ImageURL,
		ImagePath:    req.ImagePath,
		BathDate:     req.BathDate,
		DisplayOrder: req.DisplayOrder,
		CuratorNotes: req.CuratorNotes,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BathHandler) ApproveBath(c echo.Context) error {
	operator := c.Request().Header.Get(middleware.HeaderOperatorID)
	if !id.IsID32(operator) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + middleware.HeaderOperatorID})
	}
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("bath_id"), operator)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BathHandler) RejectBath(c echo.Context) error {
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("bath_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BathHandler) DeleteBath(c echo.Context) error {
	warning, err := h.uc.Delete(c.Request().Context(), c.Param("bath_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	resp := map[string]any{"deleted": true}
	if warning != "" {
		resp["warning"] = warning
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BathHandler) ListForWeek(c echo.Context) error {
	weekStart := c.QueryParam("week_start")
	if weekStart == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing week_start query param"})
	}
	dtos, err := h.uc.ListForWeek(c.Request().Context(), weekStart)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"baths": dtos})
}

func (h *BathHandler) ListAvailableWeeks(c echo.Context) error {
	weeks, err := h.uc.ListAvailableWeeks(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"weeks": weeks})
}

// ListDisplayBaths is the public endpoint: the previous week's
// approved records, or the placeholder set when the store is down.
func (h *BathHandler) ListDisplayBaths(c echo.Context) error {
	dtos, err := h.uc.ListApprovedForDisplayWeek(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"baths": dtos})
}
