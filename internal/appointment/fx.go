package appointment

import (
	"github.com/caredesk/caredesk/internal/appointment/repository"
	"github.com/caredesk/caredesk/internal/appointment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("appointment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
