package components

import (
	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/pkg/clock"
	"premium-reconciler/internal/pkg/config"
	"premium-reconciler/internal/usecase/commands"
	"premium-reconciler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(cfg config.Config) *order.RandomCodeGenerator {
			return order.NewRandomCodeGenerator(cfg.Payment.CodePrefix)
		},
		fx.As(new(order.CodeGenerator)),
	),
	func(cfg config.Config) commands.RewardPolicy {
		return commands.RewardPolicy{ClaimPoints: cfg.Rewards.ClaimPoints}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
		commands.NewPaymentCommands,
		commands.NewUserCommands,
		commands.NewRewardCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewEntitlementQueries,
		func(users queries.UserReadStore, claims queries.ClaimReadStore, clk clock.Clock, cfg config.Config) queries.RewardQueries {
			return queries.NewRewardQueries(users, claims, clk, int(cfg.Rewards.LeaderboardLimit))
		},
	),
)
