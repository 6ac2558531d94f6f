package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/caredesk/caredesk/internal/billing/domain"
	"github.com/caredesk/caredesk/internal/clock"
	ledgerdomain "github.com/caredesk/caredesk/internal/ledger/domain"
	obsmetrics "github.com/caredesk/caredesk/internal/observability/metrics"
	patientdomain "github.com/caredesk/caredesk/internal/patient/domain"
	"github.com/caredesk/caredesk/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var idRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

const (
	dateLayout = "2006-01-02"

	// maxAttempts bounds retries on serialization conflicts; validation
	// and business failures are never retried.
	maxAttempts = 3
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Clock      clock.Clock
	Repo       domain.Repository
	LedgerRepo ledgerdomain.Repository
	PatientSvc patientdomain.Service
	Metrics    *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	clock      clock.Clock
	repo       domain.Repository
	ledgerRepo ledgerdomain.Repository
	patientSvc patientdomain.Service
	metrics    *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("billing.service"),
		clock:      p.Clock,
		repo:       p.Repo,
		ledgerRepo: p.LedgerRepo,
		patientSvc: p.PatientSvc,
		metrics:    p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateBillRequest) (domain.Bill, error) {
	billID, patientID, billingDate, err := s.validate(req.BillID, req.PatientID, req.BillingDate)
	if err != nil {
		s.metrics.ObserveBillOperation(obsmetrics.BillOpCreate, obsmetrics.BillOutcomeValidation)
		return domain.Bill{}, err
	}

	bill, err := s.finalize(ctx, billID, patientID, billingDate, s.insertBill)
	s.metrics.ObserveBillOperation(obsmetrics.BillOpCreate, outcomeFor(err))
	if err != nil {
		return domain.Bill{}, err
	}

	s.metrics.ObserveBillTotal(bill.TotalAmount)
	s.log.Info("bill created",
		zap.String("bill_id", bill.BillID),
		zap.String("patient_id", bill.PatientID),
		zap.Float64("total_amount", bill.TotalAmount),
	)
	return bill, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateBillRequest) (domain.Bill, error) {
	billID, patientID, billingDate, err := s.validate(req.BillID, req.PatientID, req.BillingDate)
	if err != nil {
		s.metrics.ObserveBillOperation(obsmetrics.BillOpUpdate, obsmetrics.BillOutcomeValidation)
		return domain.Bill{}, err
	}

	bill, err := s.finalize(ctx, billID, patientID, billingDate, s.updateBill)
	s.metrics.ObserveBillOperation(obsmetrics.BillOpUpdate, outcomeFor(err))
	if err != nil {
		return domain.Bill{}, err
	}

	s.metrics.ObserveBillTotal(bill.TotalAmount)
	s.log.Info("bill updated",
		zap.String("bill_id", bill.BillID),
		zap.String("patient_id", bill.PatientID),
		zap.Float64("total_amount", bill.TotalAmount),
	)
	return bill, nil
}

// Delete removes a bill by ID. It never touches the staging ledger; staged
// usage is only consumed by Create and Update.
func (s *Service) Delete(ctx context.Context, billID string) error {
	billID = strings.TrimSpace(billID)
	if !idRe.MatchString(billID) {
		s.metrics.ObserveBillOperation(obsmetrics.BillOpDelete, obsmetrics.BillOutcomeValidation)
		return domain.ErrInvalidBillID
	}

	affected, err := s.repo.Delete(ctx, s.db, billID)
	if err != nil {
		s.metrics.ObserveBillOperation(obsmetrics.BillOpDelete, obsmetrics.BillOutcomeStorage)
		return fmt.Errorf("delete bill: %w", err)
	}
	if affected == 0 {
		s.metrics.ObserveBillOperation(obsmetrics.BillOpDelete, obsmetrics.BillOutcomeNotFound)
		return domain.ErrNotFound
	}

	s.metrics.ObserveBillOperation(obsmetrics.BillOpDelete, obsmetrics.BillOutcomeOK)
	s.log.Info("bill deleted", zap.String("bill_id", billID))
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Bill, error) {
	bills, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	return bills, nil
}

// finalize runs the billing critical section: read the staged charges under
// a row lock, total them, verify the patient, write the bill and clear the
// staging ledger. Everything happens in one transaction so a failure at any
// step leaves both the bill table and the ledger untouched.
func (s *Service) finalize(
	ctx context.Context,
	billID, patientID string,
	billingDate time.Time,
	write func(ctx context.Context, tx *gorm.DB, bill *domain.Bill) error,
) (domain.Bill, error) {
	var bill domain.Bill

	run := func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			entries, err := s.ledgerRepo.FindByPatientForUpdate(ctx, tx, patientID)
			if err != nil {
				return fmt.Errorf("load staged charges: %w", err)
			}
			if len(entries) == 0 {
				return domain.ErrNoCharges
			}

			var total float64
			for _, entry := range entries {
				total += entry.Cost
			}

			exists, err := s.patientSvc.Exists(ctx, patientID)
			if err != nil {
				return fmt.Errorf("check patient: %w", err)
			}
			if !exists {
				return domain.ErrPatientNotFound
			}

			now := s.clock.Now()
			bill = domain.Bill{
				BillID:      billID,
				PatientID:   patientID,
				TotalAmount: total,
				BillingDate: billingDate,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := write(ctx, tx, &bill); err != nil {
				return err
			}

			cleared, err := s.ledgerRepo.DeleteByPatient(ctx, tx, patientID)
			if err != nil {
				return fmt.Errorf("clear staged charges: %w", err)
			}
			s.metrics.ObserveUsageCleared(int(cleared))
			return nil
		})
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = run()
		if err == nil || !db.IsSerializationErr(err) {
			break
		}
		s.log.Warn("billing transaction conflict, retrying",
			zap.String("bill_id", billID),
			zap.Int("attempt", attempt),
		)
	}
	if err != nil {
		return domain.Bill{}, err
	}
	return bill, nil
}

func (s *Service) insertBill(ctx context.Context, tx *gorm.DB, bill *domain.Bill) error {
	if err := s.repo.Insert(ctx, tx, bill); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.ErrBillExists
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

func (s *Service) updateBill(ctx context.Context, tx *gorm.DB, bill *domain.Bill) error {
	affected, err := s.repo.UpdateByID(ctx, tx, bill)
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) validate(billID, patientID, billingDate string) (string, string, time.Time, error) {
	billID = strings.TrimSpace(billID)
	if !idRe.MatchString(billID) {
		return "", "", time.Time{}, domain.ErrInvalidBillID
	}

	patientID = strings.TrimSpace(patientID)
	if !idRe.MatchString(patientID) {
		return "", "", time.Time{}, domain.ErrInvalidPatientID
	}

	billingDate = strings.TrimSpace(billingDate)
	if billingDate == "" {
		now := s.clock.Now()
		return billID, patientID, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(dateLayout, billingDate)
	if err != nil {
		return "", "", time.Time{}, domain.ErrInvalidBillingDate
	}
	return billID, patientID, date, nil
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return obsmetrics.BillOutcomeOK
	case errors.Is(err, domain.ErrNoCharges):
		return obsmetrics.BillOutcomeNoCharges
	case errors.Is(err, domain.ErrPatientNotFound), errors.Is(err, domain.ErrNotFound):
		return obsmetrics.BillOutcomeNotFound
	case errors.Is(err, domain.ErrBillExists):
		return obsmetrics.BillOutcomeDuplicate
	default:
		return obsmetrics.BillOutcomeStorage
	}
}
