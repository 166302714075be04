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

// ProposalHandler serves the back-office proposal list and the public
// proposal page.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// Create godoc
// @Summary  Create a proposal and its checkout link
// @Tags     proposals
// @Accept   json
// @Produce  json
// @Param    body body request.CreateProposalRequest true "Proposal"
// @Success  201 {object} entities.Proposal
// @Failure  400 {object} pkg.HTTPError
// @Router   /proposals [post]
func (h *ProposalHandler) Create(c *gin.Context) {
	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	proposal, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proposal)
}

// List returns every proposal, or only the ones sent to ?email=.
func (h *ProposalHandler) List(c *gin.Context) {
	var (
		proposals []entities.Proposal
		err       error
	)
	if email := strings.TrimSpace(c.Query("email")); email != "" {
		proposals, err = h.usecase.ListForClient(c.Request.Context(), email)
	} else {
		proposals, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposalList(proposals))
}

func (h *ProposalHandler) Delete(c *gin.Context) {
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

// View godoc
// @Summary  Public proposal page
// @Tags     proposals
// @Produce  json
// @Param    id path string true "Proposal id"
// @Success  200 {object} entities.Proposal
// @Failure  404 {object} pkg.HTTPError
// @Router   /proposal/{id} [get]
func (h *ProposalHandler) View(c *gin.Context) {
	proposal, err := h.usecase.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func (h *ProposalHandler) Reject(c *gin.Context) {
	proposal, err := h.usecase.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}
