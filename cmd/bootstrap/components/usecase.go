package components

import (
	"weatherstay/internal/domain/booking"
	"weatherstay/internal/infra/gateway/payments"
	"weatherstay/internal/infra/gateway/rooms"
	"weatherstay/internal/pkg/clock"
	"weatherstay/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		func(clk clock.Clock) *booking.Services {
			return &booking.Services{Clock: clk}
		},
		fx.Annotate(
			func(c *rooms.Client) *rooms.Client { return c },
			fx.As(new(usecase.RoomCatalog)),
		),
		fx.Annotate(
			func(c *payments.Client) *payments.Client { return c },
			fx.As(new(usecase.CheckoutGateway)),
		),
		usecase.NewBookingUseCase,
		usecase.NewPaymentReconciler,
		usecase.NewTokenValidator,
	),
)
