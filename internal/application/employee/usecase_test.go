package employee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	appemployee "github.com/jhoicas/Empleados-api/internal/application/employee"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// stubRepo implementa repository.EmployeeRepository en memoria para los tests
// del orquestador, registrando cuántas veces se invoca cada operación.
type stubRepo struct {
	exists      bool
	existsErr   error
	insertErr   error
	existsCalls int
	insertCalls int
	lastInsert  *entity.Employee
}

func (s *stubRepo) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	s.existsCalls++
	return s.exists, s.existsErr
}

func (s *stubRepo) Insert(ctx context.Context, e *entity.Employee) error {
	s.insertCalls++
	s.lastInsert = e
	return s.insertErr
}

func newUseCase(repo *stubRepo, failOpen bool) *appemployee.SubmitUseCase {
	catalog := entity.NewDepartmentCatalog([]string{"Engineering", "HR", "Sales"})
	return appemployee.NewSubmitUseCase(repo, catalog, failOpen, logger.Nop())
}

func TestSubmit_RegistroValidoInsertaUnaVez(t *testing.T) {
	repo := &stubRepo{}
	uc := newUseCase(repo, true)

	result := uc.Submit(context.Background(), validRequest())

	require.True(t, result.Accepted)
	assert.Equal(t, 1, repo.existsCalls, "debe chequear duplicado exactamente una vez")
	assert.Equal(t, 1, repo.insertCalls, "debe insertar exactamente una vez")

	require.NotNil(t, repo.lastInsert)
	assert.Equal(t, "Jane Doe", repo.lastInsert.Name)
	assert.Equal(t, "E100", repo.lastInsert.EmployeeID)
	assert.Equal(t, "jane@co.com", repo.lastInsert.Email)
	assert.Equal(t, "9876543210", repo.lastInsert.PhoneNumber)
	assert.Equal(t, "Engineering", repo.lastInsert.Department)
	assert.Equal(t, "Developer", repo.lastInsert.Role)
	// La fecha se persiste como fecha estructurada, no como string.
	assert.Equal(t, 2023, repo.lastInsert.DateOfJoining.Year())
	assert.Equal(t, time.May, repo.lastInsert.DateOfJoining.Month())
	assert.Equal(t, 1, repo.lastInsert.DateOfJoining.Day())
}

func TestSubmit_DuplicadoRechazaSinLlamarAlWriter(t *testing.T) {
	repo := &stubRepo{exists: true}
	uc := newUseCase(repo, true)

	result := uc.Submit(context.Background(), validRequest())

	require.False(t, result.Accepted)
	assert.Equal(t, domain.CodeDuplicate, result.Code)
	assert.Equal(t, "duplicate employee id", result.Reason)
	assert.Equal(t, 0, repo.insertCalls, "el writer no debe invocarse ante un duplicado")
}

func TestSubmit_CamposVaciosRechazaSinTocarStorage(t *testing.T) {
	mutations := map[string]func(in *dto.EmployeeRequest){
		"name":        func(in *dto.EmployeeRequest) { in.Name = "" },
		"employee_id": func(in *dto.EmployeeRequest) { in.EmployeeID = "" },
		"email":       func(in *dto.EmployeeRequest) { in.Email = "" },
		"phone":       func(in *dto.EmployeeRequest) { in.PhoneNumber = "" },
		"department":  func(in *dto.EmployeeRequest) { in.Department = "" },
		"date":        func(in *dto.EmployeeRequest) { in.DateOfJoining = "" },
		"role":        func(in *dto.EmployeeRequest) { in.Role = "" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			repo := &stubRepo{}
			uc := newUseCase(repo, true)
			in := validRequest()
			mutate(&in)

			result := uc.Submit(context.Background(), in)

			require.False(t, result.Accepted)
			assert.Equal(t, domain.CodeEmptyField, result.Code)
			assert.Equal(t, "all fields required", result.Reason)
			assert.Equal(t, 0, repo.existsCalls)
			assert.Equal(t, 0, repo.insertCalls)
		})
	}
}

func TestSubmit_TelefonoInvalidoNoTocaStorage(t *testing.T) {
	repo := &stubRepo{}
	uc := newUseCase(repo, true)
	in := validRequest()
	in.PhoneNumber = "12345"

	result := uc.Submit(context.Background(), in)

	require.False(t, result.Accepted)
	assert.Equal(t, domain.CodeInvalidPhone, result.Code)
	assert.Equal(t, 0, repo.existsCalls, "no debe haber llamadas a storage con input inválido")
	assert.Equal(t, 0, repo.insertCalls)
}

func TestSubmit_DepartamentoFueraDelCatalogo(t *testing.T) {
	repo := &stubRepo{}
	uc := newUseCase(repo, true)
	in := validRequest()
	in.Department = "Quidditch"

	result := uc.Submit(context.Background(), in)

	require.False(t, result.Accepted)
	assert.Equal(t, domain.CodeInvalidDepartment, result.Code)
	assert.Equal(t, 0, repo.existsCalls)
}

// Política fail-open (comportamiento histórico): un error de DB en el chequeo
// de duplicados se trata como "sin duplicado" y el insert procede.
func TestSubmit_FailOpen_ErrorDeChequeoDejaPasarElInsert(t *testing.T) {
	repo := &stubRepo{existsErr: errors.New("connection refused")}
	uc := newUseCase(repo, true)

	result := uc.Submit(context.Background(), validRequest())

	require.True(t, result.Accepted)
	assert.Equal(t, 1, repo.insertCalls)
}

// Política fail-closed: el mismo error de DB se convierte en rechazo y el
// insert no se intenta.
func TestSubmit_FailClosed_ErrorDeChequeoRechaza(t *testing.T) {
	repo := &stubRepo{existsErr: errors.New("connection refused")}
	uc := newUseCase(repo, false)

	result := uc.Submit(context.Background(), validRequest())

	require.False(t, result.Accepted)
	assert.Equal(t, domain.CodeStorage, result.Code)
	assert.Equal(t, 0, repo.insertCalls)
}

func TestSubmit_ErrorDeInsertSePropagaComoRechazo(t *testing.T) {
	repo := &stubRepo{insertErr: errors.New("deadlock detected")}
	uc := newUseCase(repo, true)

	result := uc.Submit(context.Background(), validRequest())

	require.False(t, result.Accepted)
	assert.Equal(t, domain.CodeStorage, result.Code)
	assert.Contains(t, result.Reason, "deadlock detected")
}

// Si otro alta se cuela entre el chequeo y el insert, la constraint única
// dispara y el resultado sigue siendo el rechazo por duplicado.
func TestSubmit_ViolacionDeUnicidadEnInsertEsDuplicado(t *testing.T) {
	repo := &stubRepo{insertErr: domain.ErrDuplicate}
	uc := newUseCase(repo, true)

	result := uc.Submit(context.Background(), validRequest())

	require.False(t, result.Accepted)
	assert.Equal(t, domain.CodeDuplicate, result.Code)
	assert.Equal(t, "duplicate employee id", result.Reason)
}

func TestDepartments_DosLlamadasMismaSecuencia(t *testing.T) {
	uc := newUseCase(&stubRepo{}, true)

	first := uc.Departments()
	second := uc.Departments()

	assert.Equal(t, []string{"Engineering", "HR", "Sales"}, first)
	assert.Equal(t, first, second)
}

func TestDefaultForm_PrimerDepartamentoYHoy(t *testing.T) {
	uc := newUseCase(&stubRepo{}, true)

	defaults := uc.DefaultForm()

	assert.Equal(t, "Engineering", defaults.Department)
	assert.Equal(t, time.Now().Format("2006-01-02"), defaults.DateOfJoining)
}
