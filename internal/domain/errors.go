package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los textos de
// ErrAllFieldsRequired y ErrDuplicate se muestran al usuario tal cual.
var (
	ErrAllFieldsRequired  = errors.New("all fields required")
	ErrDuplicate          = errors.New("duplicate employee id")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrNotAdmin           = errors.New("el usuario no es administrador")
)

// Códigos de rechazo de una solicitud de alta. Coinciden con la taxonomía
// que la capa HTTP expone en ErrorResponse.Code.
const (
	CodeEmptyField        = "EmptyField"
	CodeInvalidPhone      = "InvalidPhoneNumber"
	CodeInvalidEmail      = "InvalidEmail"
	CodeMissingDate       = "MissingDate"
	CodeInvalidDateFormat = "InvalidDateFormat"
	CodeFutureDate        = "FutureDate"
	CodeInvalidDepartment = "InvalidDepartment"
	CodeDuplicate         = "Duplicate"
	CodeStorage           = "Storage"
)

// ValidationError describe el primer campo inválido de un registro candidato.
// Message se muestra al usuario sin reformatear.
type ValidationError struct {
	Code    string
	Message string
}

// Error implementa error.
func (e *ValidationError) Error() string {
	return e.Message
}
