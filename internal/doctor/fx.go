package doctor

import (
	"github.com/caredesk/caredesk/internal/doctor/repository"
	"github.com/caredesk/caredesk/internal/doctor/service"
	"go.uber.org/fx"
)

var Module = fx.Module("doctor.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
