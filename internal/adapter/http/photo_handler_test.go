package http

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petshop-backend/internal/testutil/storemock"
)

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func multipartPhoto(t *testing.T, field string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "photo.jpg")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("write: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestUploadPhoto(t *testing.T) {
	e := newEcho()
	store := storemock.New()
	h := NewPhotoHandler(store, "weekly-baths")

	body, ctype := multipartPhoto(t, "photo", jpegBytes(t, 40, 30))
	req := httptest.NewRequest(http.MethodPost, "/v1/photos", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()

	if err := h.UploadPhoto(e.NewContext(req, rec)); err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(resp["image_path"], "weekly-baths/") || !strings.HasSuffix(resp["image_path"], ".jpg") {
		t.Fatalf("image_path = %q", resp["image_path"])
	}
	if !store.Has(resp["image_path"]) {
		t.Fatal("object not stored")
	}
	if resp["image_url"] == "" {
		t.Fatal("image_url missing")
	}
}

func TestUploadPhoto_Rejections(t *testing.T) {
	e := newEcho()
	h := NewPhotoHandler(storemock.New(), "weekly-baths/")

	// wrong field name
	body, ctype := multipartPhoto(t, "file", jpegBytes(t, 10, 10))
	req := httptest.NewRequest(http.MethodPost, "/v1/photos", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	if err := h.UploadPhoto(e.NewContext(req, rec)); err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("wrong field: status = %d", rec.Code)
	}

	// not an image
	body, ctype = multipartPhoto(t, "photo", []byte("definitely not a jpeg"))
	req = httptest.NewRequest(http.MethodPost, "/v1/photos", body)
	req.Header.Set("Content-Type", ctype)
	rec = httptest.NewRecorder()
	if err := h.UploadPhoto(e.NewContext(req, rec)); err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("not an image: status = %d", rec.Code)
	}
}
