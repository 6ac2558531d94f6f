package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/caredesk/caredesk/internal/clock"
	"github.com/caredesk/caredesk/internal/doctor/domain"
	obsmetrics "github.com/caredesk/caredesk/internal/observability/metrics"
	"github.com/caredesk/caredesk/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	doctorIDRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	nameRe     = regexp.MustCompile(`^[A-Za-z][A-Za-z\s]*$`)
	contactRe  = regexp.MustCompile(`^[0-9]{10,}$`)
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
		log:     p.Log.Named("doctor.service"),
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateDoctorRequest) (domain.Doctor, error) {
	doctor, err := s.validate(req.DoctorID, req.Name, req.Specialization, req.ContactNo)
	if err != nil {
		return domain.Doctor{}, err
	}

	if err := s.repo.Insert(ctx, s.db, &doctor); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Doctor{}, domain.ErrDoctorExists
		}
		return domain.Doctor{}, fmt.Errorf("insert doctor: %w", err)
	}

	s.metrics.ObserveEntityWrite("doctor", "create")
	s.log.Info("doctor created", zap.String("doctor_id", doctor.DoctorID))
	return doctor, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateDoctorRequest) (domain.Doctor, error) {
	doctor, err := s.validate(req.DoctorID, req.Name, req.Specialization, req.ContactNo)
	if err != nil {
		return domain.Doctor{}, err
	}

	affected, err := s.repo.Update(ctx, s.db, &doctor)
	if err != nil {
		return domain.Doctor{}, fmt.Errorf("update doctor: %w", err)
	}
	if affected == 0 {
		return domain.Doctor{}, domain.ErrNotFound
	}

	s.metrics.ObserveEntityWrite("doctor", "update")
	return doctor, nil
}

func (s *Service) Delete(ctx context.Context, doctorID string) error {
	if !validDoctorID(doctorID) {
		return domain.ErrInvalidDoctorID
	}

	affected, err := s.repo.Delete(ctx, s.db, strings.TrimSpace(doctorID))
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	s.metrics.ObserveEntityWrite("doctor", "delete")
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Doctor, error) {
	doctors, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (s *Service) Exists(ctx context.Context, doctorID string) (bool, error) {
	if !validDoctorID(doctorID) {
		return false, domain.ErrInvalidDoctorID
	}
	return s.repo.Exists(ctx, s.db, strings.TrimSpace(doctorID))
}

func (s *Service) validate(doctorID, name, specialization, contactNo string) (domain.Doctor, error) {
	if !validDoctorID(doctorID) {
		return domain.Doctor{}, domain.ErrInvalidDoctorID
	}

	name = strings.TrimSpace(name)
	if !nameRe.MatchString(name) {
		return domain.Doctor{}, domain.ErrInvalidName
	}

	specialization = strings.TrimSpace(specialization)
	if !nameRe.MatchString(specialization) {
		return domain.Doctor{}, domain.ErrInvalidSpecialization
	}

	contactNo = strings.TrimSpace(contactNo)
	if !contactRe.MatchString(contactNo) {
		return domain.Doctor{}, domain.ErrInvalidContactNo
	}

	now := s.clock.Now()
	return domain.Doctor{
		DoctorID:       strings.TrimSpace(doctorID),
		Name:           name,
		Specialization: specialization,
		ContactNo:      contactNo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Doctor IDs must be alphanumeric and carry at least one letter.
func validDoctorID(doctorID string) bool {
	doctorID = strings.TrimSpace(doctorID)
	if !doctorIDRe.MatchString(doctorID) {
		return false
	}
	return strings.ContainsFunc(doctorID, unicode.IsLetter)
}
