package catalog

import (
	"github.com/caredesk/caredesk/internal/catalog/repository"
	"github.com/caredesk/caredesk/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
