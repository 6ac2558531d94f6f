package ledger

import (
	"github.com/caredesk/caredesk/internal/ledger/repository"
	"github.com/caredesk/caredesk/internal/ledger/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ledger.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
