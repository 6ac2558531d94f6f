package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/caredesk/caredesk/internal/clock"
	"github.com/caredesk/caredesk/internal/patient/domain"
	"github.com/caredesk/caredesk/internal/patient/repository"
)

func setupPatientService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Patient{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
}

func validPatient() domain.CreatePatientRequest {
	return domain.CreatePatientRequest{
		PatientID:     "P1",
		Name:          "Asha Rao",
		Age:           34,
		Gender:        "F",
		AdmissionDate: "2026-02-01",
		ContactNo:     "9876543210",
	}
}

func TestPatientCreateAndExists(t *testing.T) {
	svc := setupPatientService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validPatient())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.AdmissionDate.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("admission date = %v", created.AdmissionDate)
	}

	exists, err := svc.Exists(ctx, "P1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("P1 should exist")
	}

	exists, err = svc.Exists(ctx, "P2")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatal("P2 should not exist")
	}
}

func TestPatientCreateValidation(t *testing.T) {
	svc := setupPatientService(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*domain.CreatePatientRequest)
		wantErr error
	}{
		{"id with space", func(r *domain.CreatePatientRequest) { r.PatientID = "P 1" }, domain.ErrInvalidPatientID},
		{"id with symbol", func(r *domain.CreatePatientRequest) { r.PatientID = "P-1" }, domain.ErrInvalidPatientID},
		{"empty name", func(r *domain.CreatePatientRequest) { r.Name = "" }, domain.ErrInvalidName},
		{"numeric name", func(r *domain.CreatePatientRequest) { r.Name = "1234" }, domain.ErrInvalidName},
		{"negative age", func(r *domain.CreatePatientRequest) { r.Age = -1 }, domain.ErrInvalidAge},
		{"age too high", func(r *domain.CreatePatientRequest) { r.Age = 121 }, domain.ErrInvalidAge},
		{"bad gender", func(r *domain.CreatePatientRequest) { r.Gender = "X" }, domain.ErrInvalidGender},
		{"bad date", func(r *domain.CreatePatientRequest) { r.AdmissionDate = "01/02/2026" }, domain.ErrInvalidAdmissionDate},
		{"short contact", func(r *domain.CreatePatientRequest) { r.ContactNo = "12345" }, domain.ErrInvalidContactNo},
		{"contact with letters", func(r *domain.CreatePatientRequest) { r.ContactNo = "98765abcde" }, domain.ErrInvalidContactNo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validPatient()
			tc.mutate(&req)
			if _, err := svc.Create(ctx, req); !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestPatientDuplicateID(t *testing.T) {
	svc := setupPatientService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validPatient()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, validPatient()); !errors.Is(err, domain.ErrPatientExists) {
		t.Fatalf("err = %v, want ErrPatientExists", err)
	}
}

func TestPatientUpdate(t *testing.T) {
	svc := setupPatientService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validPatient()); err != nil {
		t.Fatalf("create: %v", err)
	}

	req := domain.UpdatePatientRequest(validPatient())
	req.Age = 35
	updated, err := svc.Update(ctx, req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Age != 35 {
		t.Fatalf("age = %d, want 35", updated.Age)
	}

	req.PatientID = "P9"
	if _, err := svc.Update(ctx, req); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPatientDeleteAndList(t *testing.T) {
	svc := setupPatientService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validPatient()); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, "P1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "P1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}

	patients, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(patients) != 0 {
		t.Fatalf("patients = %d, want 0", len(patients))
	}
}
