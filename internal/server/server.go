package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/caredesk/caredesk/internal/appointment"
	appointmentdomain "github.com/caredesk/caredesk/internal/appointment/domain"
	"github.com/caredesk/caredesk/internal/billing"
	billingdomain "github.com/caredesk/caredesk/internal/billing/domain"
	"github.com/caredesk/caredesk/internal/catalog"
	catalogdomain "github.com/caredesk/caredesk/internal/catalog/domain"
	"github.com/caredesk/caredesk/internal/config"
	"github.com/caredesk/caredesk/internal/doctor"
	doctordomain "github.com/caredesk/caredesk/internal/doctor/domain"
	"github.com/caredesk/caredesk/internal/ledger"
	ledgerdomain "github.com/caredesk/caredesk/internal/ledger/domain"
	"github.com/caredesk/caredesk/internal/observability"
	obsmiddleware "github.com/caredesk/caredesk/internal/observability/logger"
	"github.com/caredesk/caredesk/internal/patient"
	patientdomain "github.com/caredesk/caredesk/internal/patient/domain"
)

var Module = fx.Module("server",
	patient.Module,
	doctor.Module,
	appointment.Module,
	catalog.Module,
	ledger.Module,
	billing.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Params struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Log            *zap.Logger
	DB             *gorm.DB
	PatientSvc     patientdomain.Service
	DoctorSvc      doctordomain.Service
	AppointmentSvc appointmentdomain.Service
	CatalogSvc     catalogdomain.Service
	LedgerSvc      ledgerdomain.Service
	BillingSvc     billingdomain.Service
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	log            *zap.Logger
	db             *gorm.DB
	patientSvc     patientdomain.Service
	doctorSvc      doctordomain.Service
	appointmentSvc appointmentdomain.Service
	catalogSvc     catalogdomain.Service
	ledgerSvc      ledgerdomain.Service
	billingSvc     billingdomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		engine:         p.Engine,
		cfg:            p.Config,
		log:            p.Log.Named("server"),
		db:             p.DB,
		patientSvc:     p.PatientSvc,
		doctorSvc:      p.DoctorSvc,
		appointmentSvc: p.AppointmentSvc,
		catalogSvc:     p.CatalogSvc,
		ledgerSvc:      p.LedgerSvc,
		billingSvc:     p.BillingSvc,
	}
}

func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api")

	patients := api.Group("/patients")
	patients.POST("", s.CreatePatient)
	patients.GET("", s.ListPatients)
	patients.PUT("/:id", s.UpdatePatient)
	patients.DELETE("/:id", s.DeletePatient)
	patients.POST("/:id/usage", s.AttributeService)
	patients.GET("/:id/usage", s.ListStagedUsage)
	patients.DELETE("/:id/usage", s.ClearStagedUsage)

	doctors := api.Group("/doctors")
	doctors.POST("", s.CreateDoctor)
	doctors.GET("", s.ListDoctors)
	doctors.PUT("/:id", s.UpdateDoctor)
	doctors.DELETE("/:id", s.DeleteDoctor)

	appointments := api.Group("/appointments")
	appointments.POST("", s.CreateAppointment)
	appointments.GET("", s.ListAppointments)
	appointments.PUT("/:id", s.UpdateAppointment)
	appointments.DELETE("/:id", s.DeleteAppointment)

	services := api.Group("/services")
	services.POST("", s.CreateService)
	services.GET("", s.ListServices)
	services.PUT("/:id", s.UpdateService)
	services.DELETE("/:id", s.DeleteService)

	bills := api.Group("/bills")
	bills.POST("", s.CreateBill)
	bills.GET("", s.ListBills)
	bills.PUT("/:id", s.UpdateBill)
	bills.DELETE("/:id", s.DeleteBill)
}

func run(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			s.log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
