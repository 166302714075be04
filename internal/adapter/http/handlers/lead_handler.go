package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "clientportal/internal/adapter/http/dto/request"
	response "clientportal/internal/adapter/http/dto/response"
	"clientportal/internal/usecase"
)

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// Submit godoc
// @Summary  Marketing contact form
// @Tags     leads
// @Accept   json
// @Produce  json
// @Param    body body request.LeadRequest true "Lead"
// @Success  201 {object} response.LeadResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /leads [post]
func (h *LeadHandler) Submit(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	result, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromLeadResult(result))
}
