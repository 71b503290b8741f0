package bootstrap

import (
	"weatherstay/internal/infra/gateway/payments"
	"weatherstay/internal/infra/gateway/rooms"
	"weatherstay/internal/pkg/clock"
	"weatherstay/internal/pkg/config"

	"go.uber.org/fx"
)

// GatewayModule constructs the external collaborators once at startup; the
// clients are injected wherever needed rather than held as process globals.
var GatewayModule = fx.Module("gateways",
	fx.Provide(
		NewRoomCatalogClient,
		NewPaymentsClient,
		NewWebhookVerifier,
	),
)

func NewRoomCatalogClient(cfg config.Config) *rooms.Client {
	return rooms.New(cfg.Rooms)
}

func NewPaymentsClient(cfg config.Config) *payments.Client {
	return payments.NewClient(cfg.Payments)
}

func NewWebhookVerifier(cfg config.Config) *payments.Verifier {
	return payments.NewVerifier(cfg.Payments.WebhookSecret, payments.DefaultTolerance, clock.NewRealClock())
}
