package domain

import (
	"context"
	"errors"
)

type CreateBillRequest struct {
	BillID    string `json:"bill_id"`
	PatientID string `json:"patient_id"`
	// BillingDate is optional; it defaults to the current date when empty
	// and must otherwise be a YYYY-MM-DD calendar date.
	BillingDate string `json:"billing_date"`
}

type UpdateBillRequest struct {
	BillID      string `json:"bill_id"`
	PatientID   string `json:"patient_id"`
	BillingDate string `json:"billing_date"`
}

type Service interface {
	Create(context.Context, CreateBillRequest) (Bill, error)
	Update(context.Context, UpdateBillRequest) (Bill, error)
	Delete(ctx context.Context, billID string) error
	List(context.Context) ([]Bill, error)
}

var (
	ErrInvalidBillID      = errors.New("invalid_bill_id")
	ErrInvalidPatientID   = errors.New("invalid_patient_id")
	ErrInvalidBillingDate = errors.New("invalid_billing_date")
	ErrNoCharges          = errors.New("no_charges")
	ErrPatientNotFound    = errors.New("patient_not_found")
	ErrBillExists         = errors.New("bill_exists")
	ErrNotFound           = errors.New("bill_not_found")
)
