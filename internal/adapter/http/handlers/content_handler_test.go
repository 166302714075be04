package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"clientportal/internal/adapter/http/handlers/mocks"
	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase"
)

func newContentRouter(uc usecase.IContentUseCase) *gin.Engine {
	h := NewContentHandler(uc, 0)
	r := gin.New()
	r.GET("/api/content/files/*path", h.DownloadFile)
	r.GET("/api/content/:category", h.List)
	r.POST("/api/content/:category", h.Add)
	r.DELETE("/api/content/:category", h.Delete)
	r.POST("/api/content/:category/upload", h.Upload)
	return r
}

func TestContentHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIContentUseCase(ctrl)
	uc.EXPECT().List(gomock.Any(), entities.ContentCategoryReports, "portal_1").
		Return([]entities.ContentItem{{ID: "c1", Category: entities.ContentCategoryReports}}, nil)
	r := newContentRouter(uc)

	w := doJSON(r, http.MethodGet, "/api/content/reports?clientId=portal_1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestContentHandler_Add(t *testing.T) {
	t.Run("invalid url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newContentRouter(mocks.NewMockIContentUseCase(ctrl))

		w := doJSON(r, http.MethodPost, "/api/content/links", `{"title":"Guide","url":"not a url"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		uc.EXPECT().Add(gomock.Any(), gomock.Any()).Return(entities.ContentItem{}, usecase.ErrInvalidContent)
		r := newContentRouter(uc)

		w := doJSON(r, http.MethodPost, "/api/content/memes", `{"title":"Guide","url":"https://x.test/guide"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		uc.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.AddContentInput) (entities.ContentItem, error) {
			if in.Category != entities.ContentCategoryTraining || in.Type != entities.ContentTypeVideo {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.ContentItem{ID: "c1"}, nil
		})
		r := newContentRouter(uc)

		w := doJSON(r, http.MethodPost, "/api/content/training", `{"title":"Intro","url":"https://video.test/1","type":"video"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestContentHandler_Upload(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newContentRouter(mocks.NewMockIContentUseCase(ctrl))

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		_ = mw.WriteField("title", "Report")
		_ = mw.Close()
		req := httptest.NewRequest(http.MethodPost, "/api/content/reports/upload", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("over configured limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewContentHandler(mocks.NewMockIContentUseCase(ctrl), 1)
		r := gin.New()
		r.POST("/api/content/:category/upload", h.Upload)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		fw, _ := mw.CreateFormFile("file", "big.bin")
		_, _ = fw.Write(bytes.Repeat([]byte{'x'}, 1<<20+1))
		_ = mw.Close()
		req := httptest.NewRequest(http.MethodPost, "/api/content/reports/upload", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})

	t.Run("stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		uc.EXPECT().UploadFile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.UploadContentInput) (entities.ContentItem, error) {
			data, _ := io.ReadAll(in.Data)
			if in.Filename != "q1.pdf" || string(data) != "%PDF" || len(in.ClientIDs) != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.ContentItem{ID: "c1", Type: entities.ContentTypeFile, URL: usecase.ContentFilesRoute + "abc/q1.pdf"}, nil
		})
		r := newContentRouter(uc)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		_ = mw.WriteField("title", "Q1 report")
		_ = mw.WriteField("clientIds", "portal_1")
		_ = mw.WriteField("clientIds", "manual_2")
		fw, _ := mw.CreateFormFile("file", "q1.pdf")
		_, _ = fw.Write([]byte("%PDF"))
		_ = mw.Close()
		req := httptest.NewRequest(http.MethodPost, "/api/content/reports/upload", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestContentHandler_DownloadFile(t *testing.T) {
	t.Run("streams the file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		uc.EXPECT().Download(gomock.Any(), "abc/q1.pdf").Return(io.NopCloser(strings.NewReader("%PDF")), nil)
		r := newContentRouter(uc)

		w := doJSON(r, http.MethodGet, "/api/content/files/abc/q1.pdf", "")
		if w.Code != http.StatusOK || w.Body.String() != "%PDF" {
			t.Fatalf("unexpected response: %d %q", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type: %s", ct)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		uc.EXPECT().Download(gomock.Any(), "nope.pdf").Return(nil, usecase.ErrContentFileNotFound)
		r := newContentRouter(uc)

		if w := doJSON(r, http.MethodGet, "/api/content/files/nope.pdf", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
