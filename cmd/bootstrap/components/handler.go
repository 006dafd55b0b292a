package components

import (
	"premium-reconciler/internal/handler"
	"premium-reconciler/internal/handler/api"
	"premium-reconciler/internal/handler/middleware"
	"premium-reconciler/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewOrderHandler,
		api.NewRewardHandler,
		api.NewAdminHandler,
		func(users *api.UserHandler, orders *api.OrderHandler, rewards *api.RewardHandler, admin *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Users: users, Orders: orders, Rewards: rewards, Admin: admin}
		},
		func(svc *jwt.Service) middleware.TokenValidator { return svc },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
