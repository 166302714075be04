package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"clientportal/internal/adapter/http/dto/response"
	"clientportal/internal/adapter/http/handlers/mocks"
	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase"
)

func newQuestionnaireRouter(uc usecase.IQuestionnaireUseCase) *gin.Engine {
	h := NewQuestionnaireHandler(uc)
	r := gin.New()
	r.GET("/api/questionnaires", h.List)
	r.POST("/api/questionnaires", h.Create)
	r.DELETE("/api/questionnaires", h.Delete)
	r.GET("/api/questionnaire/:id", h.Form)
	r.PUT("/api/questionnaire/:id/progress", h.SaveProgress)
	r.POST("/api/questionnaire/:id/submit", h.Submit)
	r.GET("/api/templates", h.ListTemplates)
	r.POST("/api/templates", h.CreateTemplate)
	r.PUT("/api/templates", h.UpdateTemplate)
	r.DELETE("/api/templates", h.DeleteTemplate)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuestionnaireHandler_Create(t *testing.T) {
	t.Run("missing template id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newQuestionnaireRouter(mocks.NewMockIQuestionnaireUseCase(ctrl))

		w := doJSON(r, http.MethodPost, "/api/questionnaires", `{"client":{"name":"Acme","email":"a@acme.com"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionnaireUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Questionnaire{}, usecase.ErrTemplateNotFound)
		r := newQuestionnaireRouter(uc)

		w := doJSON(r, http.MethodPost, "/api/questionnaires", `{"templateId":"nope","client":{"name":"Acme","email":"a@acme.com"}}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionnaireUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), usecase.CreateQuestionnaireInput{
			TemplateID: "website-redesign",
			Client:     entities.ClientInfo{Name: "Acme", Email: "a@acme.com"},
		}).Return(entities.Questionnaire{ID: "q1", Status: entities.QuestionnaireStatusSent}, nil)
		r := newQuestionnaireRouter(uc)

		w := doJSON(r, http.MethodPost, "/api/questionnaires", `{"templateId":"website-redesign","client":{"name":"Acme","email":"a@acme.com"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestQuestionnaireHandler_PublicForm(t *testing.T) {
	t.Run("form with template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionnaireUseCase(ctrl)
		uc.EXPECT().GetWithTemplate(gomock.Any(), "q1").Return(
			entities.Questionnaire{ID: "q1", TemplateID: "t1"},
			entities.QuestionnaireTemplate{ID: "t1", Name: "Brief"},
			nil,
		)
		r := newQuestionnaireRouter(uc)

		w := doJSON(r, http.MethodGet, "/api/questionnaire/q1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res response.QuestionnaireFormResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if res.Questionnaire.ID != "q1" || res.Template.Name != "Brief" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("progress passes answers through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionnaireUseCase(ctrl)
		uc.EXPECT().SaveProgress(gomock.Any(), "q1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, responses []entities.QuestionResponse) (entities.Questionnaire, error) {
				if len(responses) != 2 || responses[0].QuestionID != "goals" {
					t.Fatalf("unexpected responses: %+v", responses)
				}
				return entities.Questionnaire{ID: "q1", Status: entities.QuestionnaireStatusInProgress}, nil
			})
		r := newQuestionnaireRouter(uc)

		body := `{"responses":[{"questionId":"goals","answer":"grow"},{"questionId":"channels","answer":["seo","ads"]}]}`
		w := doJSON(r, http.MethodPut, "/api/questionnaire/q1/progress", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("submit after expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionnaireUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), "q1", gomock.Any()).Return(entities.Questionnaire{}, usecase.ErrQuestionnaireExpired)
		r := newQuestionnaireRouter(uc)

		w := doJSON(r, http.MethodPost, "/api/questionnaire/q1/submit", `{"responses":[]}`)
		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("submit with missing answers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionnaireUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), "q1", gomock.Any()).Return(entities.Questionnaire{}, usecase.ErrMissingRequiredResponses)
		r := newQuestionnaireRouter(uc)

		w := doJSON(r, http.MethodPost, "/api/questionnaire/q1/submit", `{"responses":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuestionnaireHandler_Templates(t *testing.T) {
	t.Run("get one by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionnaireUseCase(ctrl)
		uc.EXPECT().GetTemplate(gomock.Any(), "t1").Return(entities.QuestionnaireTemplate{ID: "t1"}, nil)
		r := newQuestionnaireRouter(uc)

		if w := doJSON(r, http.MethodGet, "/api/templates?id=t1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid question type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newQuestionnaireRouter(mocks.NewMockIQuestionnaireUseCase(ctrl))

		body := `{"name":"Brief","questions":[{"id":"q1","type":"slider","title":"How much?"}]}`
		if w := doJSON(r, http.MethodPost, "/api/templates", body); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update built-in is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionnaireUseCase(ctrl)
		uc.EXPECT().UpdateTemplate(gomock.Any(), "website-redesign", gomock.Any()).Return(entities.QuestionnaireTemplate{}, usecase.ErrBuiltInTemplateReadOnly)
		r := newQuestionnaireRouter(uc)

		body := `{"name":"Brief","questions":[{"id":"q1","type":"text","title":"Name"}]}`
		if w := doJSON(r, http.MethodPut, "/api/templates?id=website-redesign", body); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("delete requires id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newQuestionnaireRouter(mocks.NewMockIQuestionnaireUseCase(ctrl))

		if w := doJSON(r, http.MethodDelete, "/api/templates", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
