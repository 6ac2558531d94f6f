package domain

import (
	"context"
	"errors"
)

type CreateAppointmentRequest struct {
	ApptID    string `json:"appt_id"`
	PatientID string `json:"patient_id"`
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date"`
	Diagnosis string `json:"diagnosis"`
}

type UpdateAppointmentRequest struct {
	ApptID    string `json:"appt_id"`
	PatientID string `json:"patient_id"`
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date"`
	Diagnosis string `json:"diagnosis"`
}

type Service interface {
	Create(context.Context, CreateAppointmentRequest) (Appointment, error)
	Update(context.Context, UpdateAppointmentRequest) (Appointment, error)
	Delete(ctx context.Context, apptID string) error
	List(context.Context) ([]Appointment, error)
}

var (
	ErrInvalidApptID    = errors.New("invalid_appt_id")
	ErrInvalidPatientID = errors.New("invalid_patient_id")
	ErrInvalidDoctorID  = errors.New("invalid_doctor_id")
	ErrInvalidDate      = errors.New("invalid_date")
	ErrInvalidDiagnosis = errors.New("invalid_diagnosis")
	ErrPatientNotFound  = errors.New("patient_not_found")
	ErrDoctorNotFound   = errors.New("doctor_not_found")
	ErrApptExists       = errors.New("appointment_exists")
	ErrNotFound         = errors.New("appointment_not_found")
)
