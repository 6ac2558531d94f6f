package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	catalogdomain "github.com/caredesk/caredesk/internal/catalog/domain"
	"github.com/caredesk/caredesk/internal/clock"
	"github.com/caredesk/caredesk/internal/ledger/domain"
	obsmetrics "github.com/caredesk/caredesk/internal/observability/metrics"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	idRe          = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	serviceNameRe = regexp.MustCompile(`^[A-Za-z0-9\s\-_]+$`)
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	GenID   *snowflake.Node
	Repo    domain.Repository
	Metrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	clock   clock.Clock
	genID   *snowflake.Node
	repo    domain.Repository
	metrics *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("ledger.service"),
		clock:   p.Clock,
		genID:   p.GenID,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Attribute(ctx context.Context, req domain.AttributeRequest) (*domain.UsageEntry, error) {
	patientID := strings.TrimSpace(req.PatientID)
	if !idRe.MatchString(patientID) {
		return nil, domain.ErrInvalidPatientID
	}

	if err := validateService(req.Service); err != nil {
		return nil, err
	}

	entry := domain.UsageEntry{
		ID:          s.genID.Generate(),
		PatientID:   patientID,
		ServiceID:   strings.TrimSpace(req.Service.ServiceID),
		ServiceName: strings.TrimSpace(req.Service.Name),
		Cost:        req.Service.Cost,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, &entry); err != nil {
		return nil, fmt.Errorf("stage usage entry: %w", err)
	}

	s.metrics.ObserveUsageStaged(entry.ServiceID)
	s.log.Info("usage staged",
		zap.String("patient_id", entry.PatientID),
		zap.String("service_id", entry.ServiceID),
		zap.Float64("cost", entry.Cost),
	)
	return &entry, nil
}

func (s *Service) ListForPatient(ctx context.Context, patientID string) ([]domain.UsageEntry, error) {
	patientID = strings.TrimSpace(patientID)
	if !idRe.MatchString(patientID) {
		return nil, domain.ErrInvalidPatientID
	}

	entries, err := s.repo.FindByPatient(ctx, s.db, patientID)
	if err != nil {
		return nil, fmt.Errorf("list staged usage: %w", err)
	}
	return entries, nil
}

func (s *Service) ClearForPatient(ctx context.Context, patientID string) error {
	patientID = strings.TrimSpace(patientID)
	if !idRe.MatchString(patientID) {
		return domain.ErrInvalidPatientID
	}

	// Clearing an already-empty set is a no-op, not an error.
	removed, err := s.repo.DeleteByPatient(ctx, s.db, patientID)
	if err != nil {
		return fmt.Errorf("clear staged usage: %w", err)
	}
	if removed > 0 {
		s.metrics.ObserveUsageCleared(int(removed))
		s.log.Info("staged usage cleared",
			zap.String("patient_id", patientID),
			zap.Int64("entries", removed),
		)
	}
	return nil
}

func validateService(svc catalogdomain.Entry) error {
	if !idRe.MatchString(strings.TrimSpace(svc.ServiceID)) {
		return domain.ErrInvalidServiceID
	}
	if !serviceNameRe.MatchString(strings.TrimSpace(svc.Name)) {
		return domain.ErrInvalidName
	}
	if svc.Cost < 0 || svc.Cost > catalogdomain.MaxCost {
		return domain.ErrInvalidCost
	}
	return nil
}
