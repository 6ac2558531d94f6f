package repository

import (
	"context"

	"github.com/caredesk/caredesk/internal/billing/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, bill *domain.Bill) error {
	return db.WithContext(ctx).Create(bill).Error
}

func (r *repo) UpdateByID(ctx context.Context, db *gorm.DB, bill *domain.Bill) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Bill{}).
		Where("bill_id = ?", bill.BillID).
		Updates(map[string]any{
			"patient_id":   bill.PatientID,
			"total_amount": bill.TotalAmount,
			"billing_date": bill.BillingDate,
			"updated_at":   bill.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, billID string) (int64, error) {
	res := db.WithContext(ctx).Where("bill_id = ?", billID).Delete(&domain.Bill{})
	return res.RowsAffected, res.Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := db.WithContext(ctx).Model(&domain.Bill{}).Find(&bills).Error
	return bills, err
}
