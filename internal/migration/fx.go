package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	appointmentdomain "github.com/caredesk/caredesk/internal/appointment/domain"
	billingdomain "github.com/caredesk/caredesk/internal/billing/domain"
	catalogdomain "github.com/caredesk/caredesk/internal/catalog/domain"
	doctordomain "github.com/caredesk/caredesk/internal/doctor/domain"
	ledgerdomain "github.com/caredesk/caredesk/internal/ledger/domain"
	patientdomain "github.com/caredesk/caredesk/internal/patient/domain"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB) error {
		if conn.Dialector.Name() != "postgres" {
			// MySQL and sqlite deployments fall back to schema sync from
			// the models; versioned SQL migrations target Postgres.
			return conn.AutoMigrate(
				&patientdomain.Patient{},
				&doctordomain.Doctor{},
				&appointmentdomain.Appointment{},
				&catalogdomain.Entry{},
				&ledgerdomain.UsageEntry{},
				&billingdomain.Bill{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}

		return RunMigrations(sqlDB)
	}),
)
