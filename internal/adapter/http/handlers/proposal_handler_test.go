package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"clientportal/internal/adapter/http/handlers/mocks"
	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase"
	"clientportal/pkg"
)

func newProposalRouter(uc usecase.IProposalUseCase) *gin.Engine {
	h := NewProposalHandler(uc)
	r := gin.New()
	r.POST("/api/proposals", h.Create)
	r.GET("/api/proposals", h.List)
	r.DELETE("/api/proposals", h.Delete)
	r.GET("/api/proposal/:id", h.View)
	r.POST("/api/proposal/:id/reject", h.Reject)
	return r
}

func TestProposalHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newProposalRouter(mocks.NewMockIProposalUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/api/proposals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("field errors are reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newProposalRouter(mocks.NewMockIProposalUseCase(ctrl))

		body := `{"client":{"name":"Acme","email":"not-an-email"},"services":[],"cost":10,"paymentType":"crypto"}`
		req := httptest.NewRequest(http.MethodPost, "/api/proposals", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var res pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		for _, field := range []string{"client.email", "services", "paymentType"} {
			if _, ok := res.Details[field]; !ok {
				t.Fatalf("expected detail for %s, got %+v", field, res.Details)
			}
		}
	})

	t.Run("id naming an index key is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newProposalRouter(mocks.NewMockIProposalUseCase(ctrl))

		body := `{"id":"email:victim@example.com","client":{"name":"Acme","email":"a@acme.com"},"services":[{"id":"seo","title":"SEO"}],"cost":10}`
		req := httptest.NewRequest(http.MethodPost, "/api/proposals", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var res pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if _, ok := res.Details["id"]; !ok {
			t.Fatalf("expected detail for id, got %+v", res.Details)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateProposalInput) (entities.Proposal, error) {
				if in.Client.Email != "a@acme.com" || len(in.Services) != 1 || in.Cost != 500 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Proposal{ID: "acme-seo", Status: entities.ProposalStatusPending, PaymentLink: "https://pay.test/1"}, nil
			})
		r := newProposalRouter(uc)

		body := `{"client":{"name":"Acme","email":"a@acme.com"},"services":[{"id":"seo","title":"SEO"}],"cost":500}`
		req := httptest.NewRequest(http.MethodPost, "/api/proposals", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res entities.Proposal
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.PaymentLink != "https://pay.test/1" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, errors.New("dynamo down"))
		r := newProposalRouter(uc)

		body := `{"client":{"name":"Acme","email":"a@acme.com"},"services":[{"id":"seo","title":"SEO"}],"cost":500}`
		req := httptest.NewRequest(http.MethodPost, "/api/proposals", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestProposalHandler_List(t *testing.T) {
	t.Run("all proposals without payment links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Proposal{{ID: "p1", PaymentLink: "https://pay.test/1"}}, nil)
		r := newProposalRouter(uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/proposals", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("paymentLink")) {
			t.Fatalf("list must not expose payment links: %s", w.Body.String())
		}
	})

	t.Run("filtered by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().ListForClient(gomock.Any(), "a@acme.com").Return(nil, nil)
		r := newProposalRouter(uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/proposals?email=a@acme.com", nil))

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestProposalHandler_Delete(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newProposalRouter(mocks.NewMockIProposalUseCase(ctrl))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/proposals", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "p1").Return(usecase.ErrProposalNotFound)
		r := newProposalRouter(uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/proposals?id=p1", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProposalHandler_PublicRoutes(t *testing.T) {
	t.Run("view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().View(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1", Status: entities.ProposalStatusExpired}, nil)
		r := newProposalRouter(uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/proposal/p1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject after accept conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		uc.EXPECT().Reject(gomock.Any(), "p1").Return(entities.Proposal{}, usecase.ErrInvalidStatusTransition)
		r := newProposalRouter(uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/proposal/p1/reject", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
