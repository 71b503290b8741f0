package bootstrap

import (
	"weatherstay/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module assembles the whole service: config, the Postgres pool, token
// validation, the two outbound gateways, and the repository/usecase/handler
// layers on top.
var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	GatewayModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
