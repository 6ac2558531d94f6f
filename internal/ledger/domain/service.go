package domain

import (
	"context"
	"errors"

	catalogdomain "github.com/caredesk/caredesk/internal/catalog/domain"
)

type AttributeRequest struct {
	PatientID string
	Service   catalogdomain.Entry
}

type Service interface {
	// Attribute stages one usage entry for the patient, snapshotting the
	// service's current name and cost. Patient existence is not verified
	// here; the billing engine checks it at bill time.
	Attribute(context.Context, AttributeRequest) (*UsageEntry, error)
	ListForPatient(ctx context.Context, patientID string) ([]UsageEntry, error)
	ClearForPatient(ctx context.Context, patientID string) error
}

var (
	ErrInvalidPatientID = errors.New("invalid_patient_id")
	ErrInvalidServiceID = errors.New("invalid_service_id")
	ErrInvalidName      = errors.New("invalid_service_name")
	ErrInvalidCost      = errors.New("invalid_cost")
)
