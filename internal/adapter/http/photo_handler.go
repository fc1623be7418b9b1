package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"petshop-backend/internal/infrastructure/storage"
	"petshop-backend/pkg/id"
	"petshop-backend/pkg/imaging"
)

// 10 MiB raw upload cap; the stored object is re-encoded smaller.
const maxUploadBytes = 10 << 20

type PhotoHandler struct {
	store      storage.PhotoStore
	uploadPath string
}

func NewPhotoHandler(store storage.PhotoStore, uploadPath string) *PhotoHandler {
	if uploadPath != "" && !strings.HasSuffix(uploadPath, "/") {
		uploadPath += "/"
	}
	return &PhotoHandler{store: store, uploadPath: uploadPath}
}

// UploadPhoto takes a multipart "photo" file, fits it into the display
// bounds and stores it under a generated object name. The returned
// url/path pair goes straight into a bath record create.
func (h *PhotoHandler) UploadPhoto(c echo.Context) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing photo file"})
	}
	if fh.Size > maxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "photo too large"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable photo file"})
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable photo file"})
	}

	fitted, err := imaging.Fit(raw, imaging.MaxWidth, imaging.MaxHeight)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "not a decodable image"})
	}

	path := h.uploadPath + id.NewID32() + ".jpg"
	url, err := h.store.Put(c.Request().Context(), path, fitted, "image/jpeg")
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"image_url":  url,
		"image_path": path,
	})
}
