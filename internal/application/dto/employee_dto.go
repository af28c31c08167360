package dto

// EmployeeRequest es el registro candidato tal como llega del formulario.
// DateOfJoining viaja como string "YYYY-MM-DD"; el validador lo normaliza
// a fecha estructurada antes de persistir.
type EmployeeRequest struct {
	Name          string `json:"name"`
	EmployeeID    string `json:"employee_id"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	Department    string `json:"department"`
	DateOfJoining string `json:"date_of_joining"`
	Role          string `json:"role"`
}

// SubmitResult es el desenlace de un intento de alta: Success, o Rejected
// con el código de la taxonomía y la razón que se muestra al usuario.
type SubmitResult struct {
	Accepted bool   `json:"accepted"`
	Code     string `json:"code,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// FormDefaults es el estado al que la UI resetea el formulario tras un alta
// exitosa: registro en blanco, primer departamento del catálogo y la fecha
// de hoy.
type FormDefaults struct {
	Department    string `json:"department"`
	DateOfJoining string `json:"date_of_joining"` // YYYY-MM-DD
}

// DepartmentsResponse catálogo de departamentos más los defaults del formulario.
type DepartmentsResponse struct {
	Departments []string     `json:"departments"`
	Defaults    FormDefaults `json:"defaults"`
}
