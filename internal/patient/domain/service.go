package domain

import (
	"context"
	"errors"
)

type CreatePatientRequest struct {
	PatientID     string `json:"patient_id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	AdmissionDate string `json:"admission_date"`
	ContactNo     string `json:"contact_no"`
}

type UpdatePatientRequest struct {
	PatientID     string `json:"patient_id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	AdmissionDate string `json:"admission_date"`
	ContactNo     string `json:"contact_no"`
}

type Service interface {
	Create(context.Context, CreatePatientRequest) (Patient, error)
	Update(context.Context, UpdatePatientRequest) (Patient, error)
	Delete(ctx context.Context, patientID string) error
	List(context.Context) ([]Patient, error)
	Exists(ctx context.Context, patientID string) (bool, error)
}

var (
	ErrInvalidPatientID     = errors.New("invalid_patient_id")
	ErrInvalidName          = errors.New("invalid_name")
	ErrInvalidAge           = errors.New("invalid_age")
	ErrInvalidGender        = errors.New("invalid_gender")
	ErrInvalidAdmissionDate = errors.New("invalid_admission_date")
	ErrInvalidContactNo     = errors.New("invalid_contact_no")
	ErrPatientExists        = errors.New("patient_exists")
	ErrNotFound             = errors.New("patient_not_found")
)
