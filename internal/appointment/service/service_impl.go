package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/caredesk/caredesk/internal/appointment/domain"
	"github.com/caredesk/caredesk/internal/clock"
	doctordomain "github.com/caredesk/caredesk/internal/doctor/domain"
	obsmetrics "github.com/caredesk/caredesk/internal/observability/metrics"
	patientdomain "github.com/caredesk/caredesk/internal/patient/domain"
	"github.com/caredesk/caredesk/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	idRe        = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	diagnosisRe = regexp.MustCompile(`^[A-Za-z][A-Za-z\s]*$`)
)

const dateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Clock      clock.Clock
	Repo       domain.Repository
	PatientSvc patientdomain.Service
	DoctorSvc  doctordomain.Service
	Metrics    *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	clock      clock.Clock
	repo       domain.Repository
	patientSvc patientdomain.Service
	doctorSvc  doctordomain.Service
	metrics    *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("appointment.service"),
		clock:      p.Clock,
		repo:       p.Repo,
		patientSvc: p.PatientSvc,
		doctorSvc:  p.DoctorSvc,
		metrics:    p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateAppointmentRequest) (domain.Appointment, error) {
	appt, err := s.validate(req.ApptID, req.PatientID, req.DoctorID, req.Date, req.Diagnosis)
	if err != nil {
		return domain.Appointment{}, err
	}

	if err := s.checkReferences(ctx, appt.PatientID, appt.DoctorID); err != nil {
		return domain.Appointment{}, err
	}

	if err := s.repo.Insert(ctx, s.db, &appt); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Appointment{}, domain.ErrApptExists
		}
		return domain.Appointment{}, fmt.Errorf("insert appointment: %w", err)
	}

	s.metrics.ObserveEntityWrite("appointment", "create")
	s.log.Info("appointment created",
		zap.String("appt_id", appt.ApptID),
		zap.String("patient_id", appt.PatientID),
		zap.String("doctor_id", appt.DoctorID),
	)
	return appt, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateAppointmentRequest) (domain.Appointment, error) {
	appt, err := s.validate(req.ApptID, req.PatientID, req.DoctorID, req.Date, req.Diagnosis)
	if err != nil {
		return domain.Appointment{}, err
	}

	if err := s.checkReferences(ctx, appt.PatientID, appt.DoctorID); err != nil {
		return domain.Appointment{}, err
	}

	affected, err := s.repo.Update(ctx, s.db, &appt)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("update appointment: %w", err)
	}
	if affected == 0 {
		return domain.Appointment{}, domain.ErrNotFound
	}

	s.metrics.ObserveEntityWrite("appointment", "update")
	return appt, nil
}

func (s *Service) Delete(ctx context.Context, apptID string) error {
	apptID = strings.TrimSpace(apptID)
	if !idRe.MatchString(apptID) {
		return domain.ErrInvalidApptID
	}

	affected, err := s.repo.Delete(ctx, s.db, apptID)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	s.metrics.ObserveEntityWrite("appointment", "delete")
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Appointment, error) {
	appts, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *Service) checkReferences(ctx context.Context, patientID, doctorID string) error {
	ok, err := s.patientSvc.Exists(ctx, patientID)
	if err != nil {
		return fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return domain.ErrPatientNotFound
	}

	ok, err = s.doctorSvc.Exists(ctx, doctorID)
	if err != nil {
		return fmt.Errorf("check doctor: %w", err)
	}
	if !ok {
		return domain.ErrDoctorNotFound
	}
	return nil
}

func (s *Service) validate(apptID, patientID, doctorID, date, diagnosis string) (domain.Appointment, error) {
	apptID = strings.TrimSpace(apptID)
	if !idRe.MatchString(apptID) {
		return domain.Appointment{}, domain.ErrInvalidApptID
	}

	patientID = strings.TrimSpace(patientID)
	if !idRe.MatchString(patientID) {
		return domain.Appointment{}, domain.ErrInvalidPatientID
	}

	doctorID = strings.TrimSpace(doctorID)
	if !idRe.MatchString(doctorID) {
		return domain.Appointment{}, domain.ErrInvalidDoctorID
	}

	when, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return domain.Appointment{}, domain.ErrInvalidDate
	}

	diagnosis = strings.TrimSpace(diagnosis)
	if !diagnosisRe.MatchString(diagnosis) {
		return domain.Appointment{}, domain.ErrInvalidDiagnosis
	}

	now := s.clock.Now()
	return domain.Appointment{
		ApptID:    apptID,
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      when,
		Diagnosis: diagnosis,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
