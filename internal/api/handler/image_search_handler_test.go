package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
)

type stubImageSearchService struct {
	ids    []string
	err    error
	called bool
	image  []byte
}

func (s *stubImageSearchService) SearchByImage(_ context.Context, image []byte) ([]string, error) {
	s.called = true
	s.image = image
	return s.ids, s.err
}

type stubUploadStore struct {
	saved   bool
	name    string
	saveErr error
}

func (s *stubUploadStore) Save(originalName string, _ []byte) (string, error) {
	s.saved = true
	s.name = originalName
	return "/uploads/" + originalName, s.saveErr
}

func multipartRequest(t *testing.T, fieldName, fileName string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/image_search", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestImageSearchHandler_Success(t *testing.T) {
	e := echo.New()
	service := &stubImageSearchService{ids: []string{"id-1", "id-2"}}
	uploads := &stubUploadStore{}
	handler := NewImageSearchHandler(service, uploads, zerolog.Nop())

	req := multipartRequest(t, "file", "cut.jpg", []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if !bytes.Equal(service.image, []byte("jpeg-bytes")) {
		t.Error("raw upload bytes must reach the service")
	}
	if !uploads.saved || uploads.name != "cut.jpg" {
		t.Errorf("upload not persisted: %+v", uploads)
	}

	var resp imageSearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.SimilarBarbers) != 2 || resp.SimilarBarbers[0] != "id-1" {
		t.Errorf("unexpected result: %v", resp.SimilarBarbers)
	}
}

func TestImageSearchHandler_MissingFile(t *testing.T) {
	e := echo.New()
	service := &stubImageSearchService{}
	handler := NewImageSearchHandler(service, &stubUploadStore{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/image_search", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Search(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if service.called {
		t.Error("service must not run without an upload")
	}
}

func TestImageSearchHandler_EmptyFile(t *testing.T) {
	e := echo.New()
	service := &stubImageSearchService{}
	handler := NewImageSearchHandler(service, &stubUploadStore{}, zerolog.Nop())

	req := multipartRequest(t, "file", "empty.jpg", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Search(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if service.called {
		t.Error("service must not run for an empty upload")
	}
}

func TestImageSearchHandler_SaveFailureDoesNotFailSearch(t *testing.T) {
	e := echo.New()
	service := &stubImageSearchService{ids: []string{"id-1"}}
	uploads := &stubUploadStore{saveErr: errors.New("disk full")}
	handler := NewImageSearchHandler(service, uploads, zerolog.Nop())

	req := multipartRequest(t, "file", "cut.jpg", []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Search(c); err != nil {
		t.Fatalf("save failure must not fail the request: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !service.called {
		t.Error("search must still run when the local copy cannot be written")
	}
}

func TestImageSearchHandler_ServiceErrorPropagates(t *testing.T) {
	e := echo.New()
	service := &stubImageSearchService{err: domain.ErrEmbeddingUnavailable}
	handler := NewImageSearchHandler(service, &stubUploadStore{}, zerolog.Nop())

	req := multipartRequest(t, "file", "cut.jpg", []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Search(c)
	if !errors.Is(err, domain.ErrEmbeddingUnavailable) {
		t.Errorf("expected ErrEmbeddingUnavailable to propagate, got %v", err)
	}
}
