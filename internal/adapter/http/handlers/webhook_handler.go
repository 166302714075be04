package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "clientportal/internal/adapter/http/dto/request"
	"clientportal/internal/logger"
	"clientportal/internal/usecase"
	"clientportal/pkg"
)

var errInvalidWebhookBody = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)

type WebhookHandler struct {
	usecase usecase.IPaymentWebhookUseCase
}

func NewWebhookHandler(uc usecase.IPaymentWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// MercadoPago godoc
// @Summary  Mercado Pago notifications
// @Tags     webhooks
// @Accept   json
// @Produce  json
// @Param    x-signature  header string false "ts=<ts>,v1=<hmac>"
// @Param    x-request-id header string false "Delivery id"
// @Success  200 {object} usecase.WebhookResult
// @Failure  401 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	var body request.MercadoPagoNotification
	bodyErr := c.ShouldBindJSON(&body)

	kind, dataID := body.Resolve(c.Query("type"), c.Query("data.id"))
	if bodyErr != nil && dataID == "" {
		logger.FromContext(c).Warn("[webhook][handler] unreadable notification", zap.Error(bodyErr))
		writeAppError(c, errInvalidWebhookBody)
		return
	}

	result, err := h.usecase.HandleMercadoPago(c.Request.Context(), usecase.PaymentNotification{
		Type:      kind,
		Action:    body.Action,
		DataID:    dataID,
		RequestID: c.GetHeader("x-request-id"),
		Signature: c.GetHeader("x-signature"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
