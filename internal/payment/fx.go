package payment

import (
	"go.uber.org/fx"

	"github.com/rentora/rentora/internal/payment/repository"
	"github.com/rentora/rentora/internal/report/finance"
)

var Module = fx.Module("payment",
	fx.Provide(repository.Provide),
	fx.Provide(func(r *repository.Repository) finance.PaymentSource { return r }),
)
