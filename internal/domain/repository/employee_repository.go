package repository

import (
	"context"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
// Son las dos únicas formas de sentencia que el núcleo emite contra la DB:
// un COUNT por employee_id y un INSERT de las siete columnas.
type EmployeeRepository interface {
	// ExistsByEmployeeID indica si ya hay un registro con ese employee_id.
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	// Insert persiste un registro validado como una fila nueva.
	// Devuelve domain.ErrDuplicate si la constraint única de employee_id salta.
	Insert(ctx context.Context, employee *entity.Employee) error
}
