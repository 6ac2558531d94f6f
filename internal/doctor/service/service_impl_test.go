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
	"github.com/caredesk/caredesk/internal/doctor/domain"
	"github.com/caredesk/caredesk/internal/doctor/repository"
)

func setupDoctorService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Doctor{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
}

func validDoctor() domain.CreateDoctorRequest {
	return domain.CreateDoctorRequest{
		DoctorID:       "D100",
		Name:           "Meera Iyer",
		Specialization: "Cardiology",
		ContactNo:      "9876543210",
	}
}

func TestDoctorCreateAndExists(t *testing.T) {
	svc := setupDoctorService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validDoctor()); err != nil {
		t.Fatalf("create: %v", err)
	}

	exists, err := svc.Exists(ctx, "D100")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("D100 should exist")
	}
}

func TestDoctorIDRequiresLetter(t *testing.T) {
	svc := setupDoctorService(t)
	ctx := context.Background()

	// A purely numeric ID is rejected even though it is alphanumeric.
	req := validDoctor()
	req.DoctorID = "1234"
	if _, err := svc.Create(ctx, req); !errors.Is(err, domain.ErrInvalidDoctorID) {
		t.Fatalf("err = %v, want ErrInvalidDoctorID", err)
	}

	req = validDoctor()
	req.DoctorID = "D1"
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("create with letter: %v", err)
	}
}

func TestDoctorCreateValidation(t *testing.T) {
	svc := setupDoctorService(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*domain.CreateDoctorRequest)
		wantErr error
	}{
		{"id with symbol", func(r *domain.CreateDoctorRequest) { r.DoctorID = "D-1" }, domain.ErrInvalidDoctorID},
		{"empty id", func(r *domain.CreateDoctorRequest) { r.DoctorID = "" }, domain.ErrInvalidDoctorID},
		{"numeric name", func(r *domain.CreateDoctorRequest) { r.Name = "007" }, domain.ErrInvalidName},
		{"bad specialization", func(r *domain.CreateDoctorRequest) { r.Specialization = "Cardio-1" }, domain.ErrInvalidSpecialization},
		{"short contact", func(r *domain.CreateDoctorRequest) { r.ContactNo = "12345" }, domain.ErrInvalidContactNo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validDoctor()
			tc.mutate(&req)
			if _, err := svc.Create(ctx, req); !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestDoctorDuplicateAndLifecycle(t *testing.T) {
	svc := setupDoctorService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validDoctor()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, validDoctor()); !errors.Is(err, domain.ErrDoctorExists) {
		t.Fatalf("err = %v, want ErrDoctorExists", err)
	}

	req := domain.UpdateDoctorRequest(validDoctor())
	req.Specialization = "Neurology"
	updated, err := svc.Update(ctx, req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Specialization != "Neurology" {
		t.Fatalf("specialization = %q", updated.Specialization)
	}

	if err := svc.Delete(ctx, "D100"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "D100"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}

	doctors, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(doctors) != 0 {
		t.Fatalf("doctors = %d, want 0", len(doctors))
	}
}
