package repository

import (
	"context"
	"errors"

	"github.com/caredesk/caredesk/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, entry *domain.Entry) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, entry *domain.Entry) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Entry{}).
		Where("service_id = ?", entry.ServiceID).
		Updates(map[string]any{
			"service_name": entry.Name,
			"cost":         entry.Cost,
			"updated_at":   entry.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, serviceID string) (int64, error) {
	res := db.WithContext(ctx).Where("service_id = ?", serviceID).Delete(&domain.Entry{})
	return res.RowsAffected, res.Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Entry, error) {
	var entries []domain.Entry
	err := db.WithContext(ctx).Model(&domain.Entry{}).Find(&entries).Error
	return entries, err
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, serviceID string) (*domain.Entry, error) {
	var entry domain.Entry
	err := db.WithContext(ctx).Where("service_id = ?", serviceID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
