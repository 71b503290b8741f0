package api

import (
	"io"
	"net/http"

	"weatherstay/internal/infra/gateway/payments"
	"weatherstay/internal/usecase"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "Webhook-Signature"

// maxWebhookBody caps the payload read from the notification channel.
const maxWebhookBody = 64 * 1024

type WebhookHandler struct {
	verifier   *payments.Verifier
	reconciler usecase.PaymentReconciler
}

func NewWebhookHandler(verifier *payments.Verifier, reconciler usecase.PaymentReconciler) *WebhookHandler {
	return &WebhookHandler{
		verifier:   verifier,
		reconciler: reconciler,
	}
}

// @Summary Payment notification
// @Description Receives signed payment events from the checkout provider
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Webhook-Signature header string true "Payload signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /webhooks/payments [post]
func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	// signature covers the exact bytes on the wire, so read before any
	// JSON handling
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable payload"})
		return
	}

	if err := h.verifier.Verify(payload, c.GetHeader(signatureHeader)); err != nil {
		// client error so the sender stops retrying a payload that will
		// never verify
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	event, err := payments.ParseEvent(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed event payload"})
		return
	}

	if err := h.reconciler.Reconcile(c.Request.Context(), event); err != nil {
		// transient failure: ask the provider to redeliver
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Temporary failure, retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": "ok"})
}
