package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// statementTimeout acota cada sentencia individual. La verificación de
// duplicados y el insert son operaciones cortas e independientes; ninguna
// debe quedar colgada esperando una DB muerta.
const statementTimeout = 5 * time.Second

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// ExistsByEmployeeID cuenta las filas con ese employee_id (match exacto).
func (r *EmployeeRepo) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()

	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE employee_id = $1`,
		employeeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count employee: %w", err)
	}
	return count > 0, nil
}

// Insert persiste un registro de empleado como una fila nueva.
// date_of_joining es columna DATE; pgx serializa el time.Time directamente.
func (r *EmployeeRepo) Insert(ctx context.Context, e *entity.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()

	query := `
		INSERT INTO employees (name, employee_id, email, phone_number, department, date_of_joining, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		e.Name, e.EmployeeID, e.Email, e.PhoneNumber, e.Department, e.DateOfJoining, e.Role,
	)
	if err != nil {
		// La constraint única cierra la ventana entre el pre-chequeo y el insert.
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}
