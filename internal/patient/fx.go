package patient

import (
	"github.com/caredesk/caredesk/internal/patient/repository"
	"github.com/caredesk/caredesk/internal/patient/service"
	"go.uber.org/fx"
)

var Module = fx.Module("patient.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
