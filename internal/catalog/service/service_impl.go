package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/caredesk/caredesk/internal/catalog/domain"
	"github.com/caredesk/caredesk/internal/clock"
	obsmetrics "github.com/caredesk/caredesk/internal/observability/metrics"
	"github.com/caredesk/caredesk/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	serviceIDRe   = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	serviceNameRe = regexp.MustCompile(`^[A-Za-z0-9\s\-_]+$`)
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	Repo    domain.Repository
	Metrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	clock   clock.Clock
	repo    domain.Repository
	metrics *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("catalog.service"),
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateEntryRequest) (domain.Entry, error) {
	entry, err := s.validate(req.ServiceID, req.Name, req.Cost)
	if err != nil {
		return domain.Entry{}, err
	}

	if err := s.repo.Insert(ctx, s.db, &entry); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Entry{}, domain.ErrEntryExists
		}
		return domain.Entry{}, fmt.Errorf("insert catalog entry: %w", err)
	}

	s.metrics.ObserveEntityWrite("service", "create")
	s.log.Info("catalog entry created",
		zap.String("service_id", entry.ServiceID),
		zap.Float64("cost", entry.Cost),
	)
	return entry, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateEntryRequest) (domain.Entry, error) {
	entry, err := s.validate(req.ServiceID, req.Name, req.Cost)
	if err != nil {
		return domain.Entry{}, err
	}

	affected, err := s.repo.Update(ctx, s.db, &entry)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("update catalog entry: %w", err)
	}
	if affected == 0 {
		return domain.Entry{}, domain.ErrNotFound
	}

	s.metrics.ObserveEntityWrite("service", "update")
	return entry, nil
}

func (s *Service) Delete(ctx context.Context, serviceID string) error {
	serviceID = strings.TrimSpace(serviceID)
	if !serviceIDRe.MatchString(serviceID) {
		return domain.ErrInvalidServiceID
	}

	affected, err := s.repo.Delete(ctx, s.db, serviceID)
	if err != nil {
		return fmt.Errorf("delete catalog entry: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	s.metrics.ObserveEntityWrite("service", "delete")
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list catalog entries: %w", err)
	}
	return entries, nil
}

func (s *Service) GetByID(ctx context.Context, serviceID string) (domain.Entry, error) {
	serviceID = strings.TrimSpace(serviceID)
	if !serviceIDRe.MatchString(serviceID) {
		return domain.Entry{}, domain.ErrInvalidServiceID
	}

	entry, err := s.repo.FindByID(ctx, s.db, serviceID)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("find catalog entry: %w", err)
	}
	if entry == nil {
		return domain.Entry{}, domain.ErrNotFound
	}
	return *entry, nil
}

func (s *Service) validate(serviceID, name string, cost float64) (domain.Entry, error) {
	serviceID = strings.TrimSpace(serviceID)
	if !serviceIDRe.MatchString(serviceID) {
		return domain.Entry{}, domain.ErrInvalidServiceID
	}

	name = strings.TrimSpace(name)
	if !serviceNameRe.MatchString(name) {
		return domain.Entry{}, domain.ErrInvalidName
	}

	if cost < 0 || cost > domain.MaxCost {
		return domain.Entry{}, domain.ErrInvalidCost
	}

	now := s.clock.Now()
	return domain.Entry{
		ServiceID: serviceID,
		Name:      name,
		Cost:      cost,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
