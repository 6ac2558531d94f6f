package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/caredesk/caredesk/internal/clock"
	obsmetrics "github.com/caredesk/caredesk/internal/observability/metrics"
	"github.com/caredesk/caredesk/internal/patient/domain"
	"github.com/caredesk/caredesk/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	patientIDRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	nameRe      = regexp.MustCompile(`^[A-Za-z][A-Za-z\s]*$`)
	contactRe   = regexp.MustCompile(`^[0-9]{10,}$`)
)

const dateLayout = "2006-01-02"

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
		log:     p.Log.Named("patient.service"),
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePatientRequest) (domain.Patient, error) {
	patient, err := s.validate(req.PatientID, req.Name, req.Age, req.Gender, req.AdmissionDate, req.ContactNo)
	if err != nil {
		return domain.Patient{}, err
	}

	if err := s.repo.Insert(ctx, s.db, &patient); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Patient{}, domain.ErrPatientExists
		}
		return domain.Patient{}, fmt.Errorf("insert patient: %w", err)
	}

	s.metrics.ObserveEntityWrite("patient", "create")
	s.log.Info("patient created", zap.String("patient_id", patient.PatientID))
	return patient, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdatePatientRequest) (domain.Patient, error) {
	patient, err := s.validate(req.PatientID, req.Name, req.Age, req.Gender, req.AdmissionDate, req.ContactNo)
	if err != nil {
		return domain.Patient{}, err
	}

	affected, err := s.repo.Update(ctx, s.db, &patient)
	if err != nil {
		return domain.Patient{}, fmt.Errorf("update patient: %w", err)
	}
	if affected == 0 {
		return domain.Patient{}, domain.ErrNotFound
	}

	s.metrics.ObserveEntityWrite("patient", "update")
	return patient, nil
}

func (s *Service) Delete(ctx context.Context, patientID string) error {
	patientID = strings.TrimSpace(patientID)
	if !patientIDRe.MatchString(patientID) {
		return domain.ErrInvalidPatientID
	}

	affected, err := s.repo.Delete(ctx, s.db, patientID)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	s.metrics.ObserveEntityWrite("patient", "delete")
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Patient, error) {
	patients, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *Service) Exists(ctx context.Context, patientID string) (bool, error) {
	patientID = strings.TrimSpace(patientID)
	if !patientIDRe.MatchString(patientID) {
		return false, domain.ErrInvalidPatientID
	}
	return s.repo.Exists(ctx, s.db, patientID)
}

func (s *Service) validate(patientID, name string, age int, gender, admissionDate, contactNo string) (domain.Patient, error) {
	patientID = strings.TrimSpace(patientID)
	if !patientIDRe.MatchString(patientID) {
		return domain.Patient{}, domain.ErrInvalidPatientID
	}

	name = strings.TrimSpace(name)
	if !nameRe.MatchString(name) {
		return domain.Patient{}, domain.ErrInvalidName
	}

	if age < 0 || age > 120 {
		return domain.Patient{}, domain.ErrInvalidAge
	}

	switch gender {
	case "M", "F", "Other":
	default:
		return domain.Patient{}, domain.ErrInvalidGender
	}

	admitted, err := time.Parse(dateLayout, strings.TrimSpace(admissionDate))
	if err != nil {
		return domain.Patient{}, domain.ErrInvalidAdmissionDate
	}

	contactNo = strings.TrimSpace(contactNo)
	if !contactRe.MatchString(contactNo) {
		return domain.Patient{}, domain.ErrInvalidContactNo
	}

	now := s.clock.Now()
	return domain.Patient{
		PatientID:     patientID,
		Name:          name,
		Age:           age,
		Gender:        gender,
		AdmissionDate: admitted,
		ContactNo:     contactNo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
