package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	appointmentdomain "github.com/caredesk/caredesk/internal/appointment/domain"
	billingdomain "github.com/caredesk/caredesk/internal/billing/domain"
	catalogdomain "github.com/caredesk/caredesk/internal/catalog/domain"
	doctordomain "github.com/caredesk/caredesk/internal/doctor/domain"
	ledgerdomain "github.com/caredesk/caredesk/internal/ledger/domain"
	patientdomain "github.com/caredesk/caredesk/internal/patient/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

var validationSentinels = []error{
	patientdomain.ErrInvalidPatientID,
	patientdomain.ErrInvalidName,
	patientdomain.ErrInvalidAge,
	patientdomain.ErrInvalidGender,
	patientdomain.ErrInvalidAdmissionDate,
	patientdomain.ErrInvalidContactNo,
	doctordomain.ErrInvalidDoctorID,
	doctordomain.ErrInvalidName,
	doctordomain.ErrInvalidSpecialization,
	doctordomain.ErrInvalidContactNo,
	appointmentdomain.ErrInvalidApptID,
	appointmentdomain.ErrInvalidPatientID,
	appointmentdomain.ErrInvalidDoctorID,
	appointmentdomain.ErrInvalidDate,
	appointmentdomain.ErrInvalidDiagnosis,
	catalogdomain.ErrInvalidServiceID,
	catalogdomain.ErrInvalidName,
	catalogdomain.ErrInvalidCost,
	ledgerdomain.ErrInvalidPatientID,
	ledgerdomain.ErrInvalidServiceID,
	ledgerdomain.ErrInvalidName,
	ledgerdomain.ErrInvalidCost,
	billingdomain.ErrInvalidBillID,
	billingdomain.ErrInvalidPatientID,
	billingdomain.ErrInvalidBillingDate,
}

var validationMessages = map[string]string{
	"invalid_bill_id":        "Bill ID must be alphanumeric with no spaces or special characters",
	"invalid_patient_id":     "Patient ID must be alphanumeric with no spaces or special characters",
	"invalid_doctor_id":      "Doctor ID must be alphanumeric and contain at least one letter",
	"invalid_appt_id":        "Appointment ID must be alphanumeric with no spaces or special characters",
	"invalid_service_id":     "Service ID must be alphanumeric with no spaces or special characters",
	"invalid_service_name":   "Service name may only contain letters, digits, spaces, hyphens and underscores",
	"invalid_cost":           "Cost must be a number between 0 and 5000",
	"invalid_billing_date":   "Billing date must use the YYYY-MM-DD format",
	"invalid_admission_date": "Admission date must use the YYYY-MM-DD format",
	"invalid_date":           "Date must use the YYYY-MM-DD format",
	"invalid_name":           "Name may only contain letters and spaces",
	"invalid_specialization": "Specialization may only contain letters and spaces",
	"invalid_diagnosis":      "Diagnosis may only contain letters and spaces",
	"invalid_age":            "Age must be between 0 and 120",
	"invalid_gender":         "Gender must be one of M, F or Other",
	"invalid_contact_no":     "Contact number must contain at least 10 digits",
}

var notFoundMessages = map[error]string{
	patientdomain.ErrNotFound:            "Patient ID does not exist",
	doctordomain.ErrNotFound:             "Doctor ID does not exist",
	appointmentdomain.ErrNotFound:        "Appointment ID not found",
	appointmentdomain.ErrPatientNotFound: "Patient ID does not exist",
	appointmentdomain.ErrDoctorNotFound:  "Doctor ID does not exist",
	catalogdomain.ErrNotFound:            "Service ID not found",
	billingdomain.ErrNotFound:            "Bill ID not found",
	billingdomain.ErrPatientNotFound:     "Patient ID does not exist",
}

var conflictSentinels = []error{
	patientdomain.ErrPatientExists,
	doctordomain.ErrDoctorExists,
	appointmentdomain.ErrApptExists,
	catalogdomain.ErrEntryExists,
	billingdomain.ErrBillExists,
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	var vErr *ValidationErrors
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			code := sentinel.Error()
			return http.StatusBadRequest, errorPayload{
				Type:    "validation_error",
				Message: "validation error",
				Errors: []ValidationError{
					{
						Field:   strings.TrimPrefix(code, "invalid_"),
						Code:    code,
						Message: validationMessage(code),
					},
				},
			}
		}
	}

	if errors.Is(err, billingdomain.ErrNoCharges) {
		return http.StatusUnprocessableEntity, errorPayload{
			Type:    "no_charges",
			Message: "No services to bill for this patient",
		}
	}

	for sentinel, message := range notFoundMessages {
		if errors.Is(err, sentinel) {
			return http.StatusNotFound, errorPayload{
				Type:    "not_found",
				Message: message,
			}
		}
	}

	for _, sentinel := range conflictSentinels {
		if errors.Is(err, sentinel) {
			return http.StatusConflict, errorPayload{
				Type:    "conflict",
				Message: "record already exists",
			}
		}
	}

	return http.StatusInternalServerError, errorPayload{
		Type:    "storage_error",
		Message: "internal server error",
	}
}

func validationMessage(code string) string {
	if message, ok := validationMessages[code]; ok {
		return message
	}
	return "invalid value"
}

func classifyErrorForLog(err error) (string, string) {
	status, payload := mapError(err)
	code := payload.Type
	if len(payload.Errors) > 0 {
		code = payload.Errors[0].Code
	}
	switch {
	case status >= http.StatusInternalServerError:
		return "storage_error", code
	case payload.Type == "validation_error":
		return "validation_error", code
	default:
		return payload.Type, code
	}
}
