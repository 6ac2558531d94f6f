package domain

import (
	"context"
	"errors"
)

type CreateDoctorRequest struct {
	DoctorID       string `json:"doctor_id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	ContactNo      string `json:"contact_no"`
}

type UpdateDoctorRequest struct {
	DoctorID       string `json:"doctor_id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	ContactNo      string `json:"contact_no"`
}

type Service interface {
	Create(context.Context, CreateDoctorRequest) (Doctor, error)
	Update(context.Context, UpdateDoctorRequest) (Doctor, error)
	Delete(ctx context.Context, doctorID string) error
	List(context.Context) ([]Doctor, error)
	Exists(ctx context.Context, doctorID string) (bool, error)
}

var (
	ErrInvalidDoctorID       = errors.New("invalid_doctor_id")
	ErrInvalidName           = errors.New("invalid_name")
	ErrInvalidSpecialization = errors.New("invalid_specialization")
	ErrInvalidContactNo      = errors.New("invalid_contact_no")
	ErrDoctorExists          = errors.New("doctor_exists")
	ErrNotFound              = errors.New("doctor_not_found")
)
