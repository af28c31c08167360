package employee

import (
	"regexp"
	"time"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
)

// dateLayout es el único formato de fecha aceptado desde el formulario.
const dateLayout = "2006-01-02"

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9_.+-]+@[A-Za-z0-9-]+\.[A-Za-z0-9-.]+$`)

// Validate aplica las reglas de campo sobre un registro candidato, en orden
// fijo y cortando en la primera que falla (el orden determina qué mensaje ve
// el usuario). Devuelve la fecha de ingreso normalizada cuando todo pasa.
//
// Pertenencia del departamento al catálogo y no-vacuidad de los campos se
// verifican antes, en el orquestador, no aquí.
func Validate(in dto.EmployeeRequest) (time.Time, *domain.ValidationError) {
	if !isTenDigits(in.PhoneNumber) {
		return time.Time{}, &domain.ValidationError{
			Code:    domain.CodeInvalidPhone,
			Message: "Phone number must be a 10-digit numeric value.",
		}
	}

	if !emailRegex.MatchString(in.Email) {
		return time.Time{}, &domain.ValidationError{
			Code:    domain.CodeInvalidEmail,
			Message: "Invalid email format.",
		}
	}

	if in.DateOfJoining == "" {
		return time.Time{}, &domain.ValidationError{
			Code:    domain.CodeMissingDate,
			Message: "Date of Joining cannot be empty.",
		}
	}

	date, err := time.ParseInLocation(dateLayout, in.DateOfJoining, time.Local)
	if err != nil {
		return time.Time{}, &domain.ValidationError{
			Code:    domain.CodeInvalidDateFormat,
			Message: "Invalid Date of Joining format. Please use YYYY-MM-DD.",
		}
	}

	// Comparación de fechas calendario, no de timestamps.
	if dateAfter(date, time.Now()) {
		return time.Time{}, &domain.ValidationError{
			Code:    domain.CodeFutureDate,
			Message: "Date of Joining cannot be in the future.",
		}
	}

	return date, nil
}

// isTenDigits exige exactamente 10 caracteres, todos dígitos ASCII.
func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// dateAfter indica si la fecha calendario de a es posterior a la de b.
func dateAfter(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}
