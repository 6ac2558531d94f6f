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

	"github.com/caredesk/caredesk/internal/catalog/domain"
	"github.com/caredesk/caredesk/internal/catalog/repository"
	"github.com/caredesk/caredesk/internal/clock"
)

func setupCatalogService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Entry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
}

func TestCatalogCreateAndGet(t *testing.T) {
	svc := setupCatalogService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateEntryRequest{
		ServiceID: "XRAY1",
		Name:      "Chest X-Ray",
		Cost:      250,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Cost != 250 {
		t.Fatalf("cost = %v, want 250", created.Cost)
	}

	got, err := svc.GetByID(ctx, "XRAY1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Chest X-Ray" {
		t.Fatalf("name = %q, want Chest X-Ray", got.Name)
	}
}

func TestCatalogCreateValidation(t *testing.T) {
	svc := setupCatalogService(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		req     domain.CreateEntryRequest
		wantErr error
	}{
		{"bad id", domain.CreateEntryRequest{ServiceID: "X 1", Name: "Scan", Cost: 10}, domain.ErrInvalidServiceID},
		{"empty id", domain.CreateEntryRequest{ServiceID: "", Name: "Scan", Cost: 10}, domain.ErrInvalidServiceID},
		{"bad name", domain.CreateEntryRequest{ServiceID: "S1", Name: "Scan!", Cost: 10}, domain.ErrInvalidName},
		{"cost above cap", domain.CreateEntryRequest{ServiceID: "S1", Name: "Scan", Cost: 5000.01}, domain.ErrInvalidCost},
		{"negative cost", domain.CreateEntryRequest{ServiceID: "S1", Name: "Scan", Cost: -5}, domain.ErrInvalidCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.req); !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}

	// Hyphens, underscores and digits are allowed in names; cost may sit
	// exactly on the bounds.
	if _, err := svc.Create(ctx, domain.CreateEntryRequest{ServiceID: "S2", Name: "MRI-Scan_2", Cost: 5000}); err != nil {
		t.Fatalf("boundary create: %v", err)
	}
	if _, err := svc.Create(ctx, domain.CreateEntryRequest{ServiceID: "S3", Name: "Consult", Cost: 0}); err != nil {
		t.Fatalf("zero-cost create: %v", err)
	}
}

func TestCatalogDuplicateID(t *testing.T) {
	svc := setupCatalogService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateEntryRequest{ServiceID: "S1", Name: "Scan", Cost: 10}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, domain.CreateEntryRequest{ServiceID: "S1", Name: "Other", Cost: 20}); !errors.Is(err, domain.ErrEntryExists) {
		t.Fatalf("err = %v, want ErrEntryExists", err)
	}
}

func TestCatalogUpdate(t *testing.T) {
	svc := setupCatalogService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateEntryRequest{ServiceID: "S1", Name: "Scan", Cost: 10}); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, domain.UpdateEntryRequest{ServiceID: "S1", Name: "Full Scan", Cost: 15})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Cost != 15 || updated.Name != "Full Scan" {
		t.Fatalf("updated = %+v", updated)
	}

	if _, err := svc.Update(ctx, domain.UpdateEntryRequest{ServiceID: "S9", Name: "Ghost", Cost: 1}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCatalogDeleteAndList(t *testing.T) {
	svc := setupCatalogService(t)
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		if _, err := svc.Create(ctx, domain.CreateEntryRequest{
			ServiceID: fmt.Sprintf("S%d", i),
			Name:      "Scan",
			Cost:      float64(i * 10),
		}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	if err := svc.Delete(ctx, "S1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "S1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}

	entries, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].ServiceID != "S2" {
		t.Fatalf("entries = %+v, want only S2", entries)
	}

	if _, err := svc.GetByID(ctx, "S1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get deleted err = %v, want ErrNotFound", err)
	}
}
