package billing

import (
	"github.com/caredesk/caredesk/internal/billing/repository"
	"github.com/caredesk/caredesk/internal/billing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("billing.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
