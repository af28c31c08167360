package entity

import "time"

// Employee representa un registro de empleado tal como se persiste.
// No existen operaciones de actualización ni borrado: el registro se crea
// una vez desde el formulario de alta y queda inmutable.
type Employee struct {
	Name          string
	EmployeeID    string    // identificador único (el largo máximo lo limita la UI, no el servidor)
	Email         string
	PhoneNumber   string    // exactamente 10 dígitos ASCII
	Department    string    // debe pertenecer al catálogo de departamentos
	DateOfJoining time.Time // solo la parte de fecha es significativa
	Role          string
}
