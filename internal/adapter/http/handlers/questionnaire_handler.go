package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "clientportal/internal/adapter/http/dto/request"
	response "clientportal/internal/adapter/http/dto/response"
	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase"
)

type QuestionnaireHandler struct {
	usecase usecase.IQuestionnaireUseCase
}

func NewQuestionnaireHandler(uc usecase.IQuestionnaireUseCase) *QuestionnaireHandler {
	return &QuestionnaireHandler{usecase: uc}
}

func (h *QuestionnaireHandler) Create(c *gin.Context) {
	var payload request.CreateQuestionnaireRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	q, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

// List returns every questionnaire, or only the ones sent to ?email=.
func (h *QuestionnaireHandler) List(c *gin.Context) {
	var (
		list []entities.Questionnaire
		err  error
	)
	if email := strings.TrimSpace(c.Query("email")); email != "" {
		list, err = h.usecase.ListForClient(c.Request.Context(), email)
	} else {
		list, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}
	if list == nil {
		list = []entities.Questionnaire{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *QuestionnaireHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		writeAppError(c, errMissingID)
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK())
}

// Form godoc
// @Summary  Public questionnaire form with its template
// @Tags     questionnaires
// @Produce  json
// @Param    id path string true "Questionnaire id"
// @Success  200 {object} response.QuestionnaireFormResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /questionnaire/{id} [get]
func (h *QuestionnaireHandler) Form(c *gin.Context) {
	q, tpl, err := h.usecase.GetWithTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.QuestionnaireFormResponse{Questionnaire: q, Template: tpl})
}

func (h *QuestionnaireHandler) SaveProgress(c *gin.Context) {
	var payload request.ResponsesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	q, err := h.usecase.SaveProgress(c.Request.Context(), c.Param("id"), payload.ToEntities())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// Submit godoc
// @Summary  Submit questionnaire answers
// @Tags     questionnaires
// @Accept   json
// @Produce  json
// @Param    id   path string                    true "Questionnaire id"
// @Param    body body request.ResponsesRequest  true "Answers"
// @Success  200 {object} entities.Questionnaire
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  410 {object} pkg.HTTPError
// @Router   /questionnaire/{id}/submit [post]
func (h *QuestionnaireHandler) Submit(c *gin.Context) {
	var payload request.ResponsesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	q, err := h.usecase.Submit(c.Request.Context(), c.Param("id"), payload.ToEntities())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// ListTemplates returns all templates, or the one named by ?id=.
func (h *QuestionnaireHandler) ListTemplates(c *gin.Context) {
	if id := strings.TrimSpace(c.Query("id")); id != "" {
		tpl, err := h.usecase.GetTemplate(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tpl)
		return
	}
	list, err := h.usecase.ListTemplates(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *QuestionnaireHandler) CreateTemplate(c *gin.Context) {
	var payload request.TemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	tpl, err := h.usecase.CreateTemplate(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

func (h *QuestionnaireHandler) UpdateTemplate(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		writeAppError(c, errMissingID)
		return
	}
	var payload request.TemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	tpl, err := h.usecase.UpdateTemplate(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *QuestionnaireHandler) DeleteTemplate(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		writeAppError(c, errMissingID)
		return
	}
	if err := h.usecase.DeleteTemplate(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK())
}
