package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathProposals      = "/proposals"
	PathQuestionnaires = "/questionnaires"
	PathTemplates      = "/templates"
	PathContent        = "/content"
	PathAdminClients   = "/admin/clients"
	PathAdminPortals   = "/admin/portals"
)

// addPublicRoutes mounts what clients and the marketing site reach without a session.
func addPublicRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.GET("/pixel", h.Tracking.Pixel)
	rg.POST("/leads", h.Lead.Submit)

	rg.GET("/proposal/:id", h.Proposal.View)
	rg.POST("/proposal/:id/reject", h.Proposal.Reject)

	rg.GET("/questionnaire/:id", h.Questionnaire.Form)
	rg.PUT("/questionnaire/:id/progress", h.Questionnaire.SaveProgress)
	rg.POST("/questionnaire/:id/submit", h.Questionnaire.Submit)

	rg.GET("/portal/:portalId", h.Client.PortalView)
	rg.GET(PathContent+"/files/*path", h.Content.DownloadFile)

	rg.POST("/webhooks/mercadopago", h.Webhook.MercadoPago)

	rg.POST("/admin/login", h.Auth.Login)
	rg.POST("/admin/logout", h.Auth.Logout)
}

func addStaffRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.GET("/admin/session", h.Auth.Session)
	rg.GET("/admin/tracking/:type/:id", h.Tracking.Stats)

	rg.GET(PathProposals, h.Proposal.List)
	rg.POST(PathProposals, h.Proposal.Create)

	rg.GET(PathQuestionnaires, h.Questionnaire.List)
	rg.POST(PathQuestionnaires, h.Questionnaire.Create)
	rg.GET(PathTemplates, h.Questionnaire.ListTemplates)

	rg.GET(PathAdminClients, h.Client.ListClients)
	rg.GET(PathAdminClients+"/:id", h.Client.GetClient)

	rg.GET(PathContent+"/:category", h.Content.List)
}

// addAdminRoutes mounts deletes, template writes and client management.
func addAdminRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.DELETE(PathProposals, h.Proposal.Delete)
	rg.DELETE(PathQuestionnaires, h.Questionnaire.Delete)

	templates := rg.Group(PathTemplates)
	{
		templates.POST("", h.Questionnaire.CreateTemplate)
		templates.PUT("", h.Questionnaire.UpdateTemplate)
		templates.DELETE("", h.Questionnaire.DeleteTemplate)
	}

	clients := rg.Group(PathAdminClients)
	{
		clients.POST("", h.Client.CreateClient)
		clients.PUT("/:id", h.Client.UpdateClient)
		clients.DELETE("/:id", h.Client.DeleteClient)
		clients.POST("/:id/convert", h.Client.ConvertToPortal)
	}

	portals := rg.Group(PathAdminPortals)
	{
		portals.GET("", h.Client.ListPortals)
		portals.POST("", h.Client.CreatePortal)
		portals.PUT("/:id/active", h.Client.SetPortalActive)
		portals.DELETE("/:id", h.Client.DeletePortal)
	}

	content := rg.Group(PathContent)
	{
		content.POST("/:category", h.Content.Add)
		content.DELETE("/:category", h.Content.Delete)
		content.POST("/:category/upload", h.Content.Upload)
	}
}
