package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/caredesk/caredesk/internal/billing/domain"
	billingrepo "github.com/caredesk/caredesk/internal/billing/repository"
	"github.com/caredesk/caredesk/internal/clock"
	ledgerdomain "github.com/caredesk/caredesk/internal/ledger/domain"
	ledgerrepo "github.com/caredesk/caredesk/internal/ledger/repository"
	patientdomain "github.com/caredesk/caredesk/internal/patient/domain"
)

type patientStub struct {
	exists bool
	err    error
}

func (p *patientStub) Create(ctx context.Context, req patientdomain.CreatePatientRequest) (patientdomain.Patient, error) {
	return patientdomain.Patient{}, nil
}

func (p *patientStub) Update(ctx context.Context, req patientdomain.UpdatePatientRequest) (patientdomain.Patient, error) {
	return patientdomain.Patient{}, nil
}

func (p *patientStub) Delete(ctx context.Context, patientID string) error { return nil }

func (p *patientStub) List(ctx context.Context) ([]patientdomain.Patient, error) {
	return nil, nil
}

func (p *patientStub) Exists(ctx context.Context, patientID string) (bool, error) {
	return p.exists, p.err
}

func setupBillingService(t *testing.T, patients patientdomain.Service, clk clock.Clock) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Bill{}, &ledgerdomain.UsageEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc := New(Params{
		DB:         db,
		Log:        zap.NewNop(),
		Clock:      clk,
		Repo:       billingrepo.Provide(),
		LedgerRepo: ledgerrepo.Provide(),
		PatientSvc: patients,
	})
	return svc, db
}

var nextUsageID int64

func stageUsage(t *testing.T, db *gorm.DB, patientID string, costs ...float64) {
	t.Helper()
	for i, cost := range costs {
		id := atomic.AddInt64(&nextUsageID, 1)
		entry := ledgerdomain.UsageEntry{
			ID:          snowflake.ID(id),
			PatientID:   patientID,
			ServiceID:   fmt.Sprintf("SVC%d", i),
			ServiceName: fmt.Sprintf("Service %d", i),
			Cost:        cost,
			CreatedAt:   time.Now().UTC(),
		}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("stage usage: %v", err)
		}
	}
}

func stagedCount(t *testing.T, db *gorm.DB, patientID string) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&ledgerdomain.UsageEntry{}).Where("patient_id = ?", patientID).Count(&count).Error; err != nil {
		t.Fatalf("count staged usage: %v", err)
	}
	return count
}

func billCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&domain.Bill{}).Count(&count).Error; err != nil {
		t.Fatalf("count bills: %v", err)
	}
	return count
}

func TestCreateBillTotalsAndClearsLedger(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	svc, db := setupBillingService(t, &patientStub{exists: true}, clk)

	stageUsage(t, db, "P1", 100.0, 250.5, 49.5)

	bill, err := svc.Create(context.Background(), domain.CreateBillRequest{
		BillID:    "B1",
		PatientID: "P1",
	})
	if err != nil {
		t.Fatalf("create bill: %v", err)
	}
	if bill.TotalAmount != 400.0 {
		t.Fatalf("total = %v, want 400.0", bill.TotalAmount)
	}
	if got := bill.BillingDate; !got.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("billing date = %v, want clock date", got)
	}
	if n := stagedCount(t, db, "P1"); n != 0 {
		t.Fatalf("staged entries after billing = %d, want 0", n)
	}

	var stored domain.Bill
	if err := db.First(&stored, "bill_id = ?", "B1").Error; err != nil {
		t.Fatalf("load bill: %v", err)
	}
	if stored.TotalAmount != 400.0 {
		t.Fatalf("stored total = %v, want 400.0", stored.TotalAmount)
	}
}

func TestCreateBillExplicitDate(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	svc, db := setupBillingService(t, &patientStub{exists: true}, clk)

	stageUsage(t, db, "P1", 10)

	bill, err := svc.Create(context.Background(), domain.CreateBillRequest{
		BillID:      "B1",
		PatientID:   "P1",
		BillingDate: "2026-01-31",
	})
	if err != nil {
		t.Fatalf("create bill: %v", err)
	}
	if !bill.BillingDate.Equal(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("billing date = %v, want 2026-01-31", bill.BillingDate)
	}
}

func TestCreateBillNoCharges(t *testing.T) {
	svc, db := setupBillingService(t, &patientStub{exists: true}, clock.NewFakeClock(time.Now()))

	_, err := svc.Create(context.Background(), domain.CreateBillRequest{
		BillID:    "B1",
		PatientID: "P1",
	})
	if !errors.Is(err, domain.ErrNoCharges) {
		t.Fatalf("err = %v, want ErrNoCharges", err)
	}
	if n := billCount(t, db); n != 0 {
		t.Fatalf("bills written = %d, want 0", n)
	}
}

func TestCreateBillPatientMissingLeavesLedger(t *testing.T) {
	svc, db := setupBillingService(t, &patientStub{exists: false}, clock.NewFakeClock(time.Now()))

	stageUsage(t, db, "P1", 55)

	_, err := svc.Create(context.Background(), domain.CreateBillRequest{
		BillID:    "B1",
		PatientID: "P1",
	})
	if !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("err = %v, want ErrPatientNotFound", err)
	}
	if n := stagedCount(t, db, "P1"); n != 1 {
		t.Fatalf("staged entries = %d, want 1 (ledger must survive failed billing)", n)
	}
	if n := billCount(t, db); n != 0 {
		t.Fatalf("bills written = %d, want 0", n)
	}
}

func TestCreateBillDuplicateLeavesEverything(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	svc, db := setupBillingService(t, &patientStub{exists: true}, clk)

	stageUsage(t, db, "P1", 75)
	if _, err := svc.Create(context.Background(), domain.CreateBillRequest{BillID: "B1", PatientID: "P1"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	stageUsage(t, db, "P1", 20)
	_, err := svc.Create(context.Background(), domain.CreateBillRequest{BillID: "B1", PatientID: "P1"})
	if !errors.Is(err, domain.ErrBillExists) {
		t.Fatalf("err = %v, want ErrBillExists", err)
	}

	var stored domain.Bill
	if err := db.First(&stored, "bill_id = ?", "B1").Error; err != nil {
		t.Fatalf("load bill: %v", err)
	}
	if stored.TotalAmount != 75 {
		t.Fatalf("stored total = %v, want original 75", stored.TotalAmount)
	}
	if n := stagedCount(t, db, "P1"); n != 1 {
		t.Fatalf("staged entries = %d, want 1 (failed duplicate must not clear)", n)
	}
}

func TestCreateBillInvalidID(t *testing.T) {
	svc, db := setupBillingService(t, &patientStub{exists: true}, clock.NewFakeClock(time.Now()))

	stageUsage(t, db, "P1", 10)

	_, err := svc.Create(context.Background(), domain.CreateBillRequest{
		BillID:    "bill-1",
		PatientID: "P1",
	})
	if !errors.Is(err, domain.ErrInvalidBillID) {
		t.Fatalf("err = %v, want ErrInvalidBillID", err)
	}
	if n := stagedCount(t, db, "P1"); n != 1 {
		t.Fatalf("staged entries = %d, want 1", n)
	}
}

func TestCreateBillInvalidDate(t *testing.T) {
	svc, _ := setupBillingService(t, &patientStub{exists: true}, clock.NewFakeClock(time.Now()))

	_, err := svc.Create(context.Background(), domain.CreateBillRequest{
		BillID:      "B1",
		PatientID:   "P1",
		BillingDate: "31-01-2026",
	})
	if !errors.Is(err, domain.ErrInvalidBillingDate) {
		t.Fatalf("err = %v, want ErrInvalidBillingDate", err)
	}
}

func TestUpdateBillRecomputesFromLedger(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	svc, db := setupBillingService(t, &patientStub{exists: true}, clk)

	stageUsage(t, db, "P1", 75)
	if _, err := svc.Create(context.Background(), domain.CreateBillRequest{BillID: "B1", PatientID: "P1"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	stageUsage(t, db, "P1", 20, 5)
	bill, err := svc.Update(context.Background(), domain.UpdateBillRequest{BillID: "B1", PatientID: "P1"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if bill.TotalAmount != 25 {
		t.Fatalf("updated total = %v, want 25", bill.TotalAmount)
	}
	if n := stagedCount(t, db, "P1"); n != 0 {
		t.Fatalf("staged entries after update = %d, want 0", n)
	}
}

func TestUpdateBillMissingLeavesLedger(t *testing.T) {
	svc, db := setupBillingService(t, &patientStub{exists: true}, clock.NewFakeClock(time.Now()))

	stageUsage(t, db, "P1", 33)

	_, err := svc.Update(context.Background(), domain.UpdateBillRequest{BillID: "B9", PatientID: "P1"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if n := stagedCount(t, db, "P1"); n != 1 {
		t.Fatalf("staged entries = %d, want 1 (failed update must not clear)", n)
	}
}

func TestDeleteBill(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	svc, db := setupBillingService(t, &patientStub{exists: true}, clk)

	stageUsage(t, db, "P1", 10)
	if _, err := svc.Create(context.Background(), domain.CreateBillRequest{BillID: "B1", PatientID: "P1"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), "B1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n := billCount(t, db); n != 0 {
		t.Fatalf("bills after delete = %d, want 0", n)
	}

	if err := svc.Delete(context.Background(), "B1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
