package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "clientportal/internal/adapter/http/dto/request"
	response "clientportal/internal/adapter/http/dto/response"
	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase"
)

// ClientHandler serves client management and the public portal page.
type ClientHandler struct {
	usecase usecase.IClientUseCase
	baseURL string
}

func NewClientHandler(uc usecase.IClientUseCase, baseURL string) *ClientHandler {
	return &ClientHandler{usecase: uc, baseURL: baseURL}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if clients == nil {
		clients = []entities.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.ResolveClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.CreateManualClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	client, err := h.usecase.CreateManualClient(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClient patches either kind of client; the id prefix decides which.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.UpdateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	client, err := h.usecase.UpdateClient(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK())
}

func (h *ClientHandler) ConvertToPortal(c *gin.Context) {
	portal, err := h.usecase.ConvertToPortal(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPortal(portal, true, h.baseURL))
}

func (h *ClientHandler) ListPortals(c *gin.Context) {
	portals, err := h.usecase.ListPortals(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if portals == nil {
		portals = []entities.ClientPortal{}
	}
	c.JSON(http.StatusOK, portals)
}

// CreatePortal answers 201 for a new portal and 200 when the email already
// had one.
func (h *ClientHandler) CreatePortal(c *gin.Context) {
	var payload request.CreatePortalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	portal, created, err := h.usecase.CreateClientPortal(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromPortal(portal, created, h.baseURL))
}

func (h *ClientHandler) SetPortalActive(c *gin.Context) {
	var payload request.SetPortalActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	portal, err := h.usecase.SetPortalActive(c.Request.Context(), c.Param("id"), *payload.Active)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, portal)
}

func (h *ClientHandler) DeletePortal(c *gin.Context) {
	if err := h.usecase.DeletePortal(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK())
}

// PortalView godoc
// @Summary  Public client portal
// @Tags     portal
// @Produce  json
// @Param    portalId path string true "Portal id"
// @Success  200 {object} usecase.PortalView
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /portal/{portalId} [get]
func (h *ClientHandler) PortalView(c *gin.Context) {
	view, err := h.usecase.GetPortalView(c.Request.Context(), c.Param("portalId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
