package employee

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// SubmitUseCase orquesta un intento de alta de empleado:
// campos vacíos → departamento en catálogo → validación de campos →
// chequeo de duplicado → insert. Cada etapa corta con el primer rechazo.
// El núcleo no guarda estado entre llamadas; el formulario vive en la UI.
type SubmitUseCase struct {
	repo     repository.EmployeeRepository
	catalog  entity.DepartmentCatalog
	failOpen bool // política ante error de DB en el chequeo de duplicado
	log      *logger.Logger
}

// NewSubmitUseCase construye el orquestador de altas.
// failOpen reproduce el comportamiento histórico: si el chequeo de duplicado
// falla contra la DB se asume "no hay duplicado" y el insert procede. Un
// despliegue estricto puede apagarlo (INTAKE_FAIL_OPEN_ON_CHECK_ERROR=false)
// y el error de storage se convierte en rechazo.
func NewSubmitUseCase(repo repository.EmployeeRepository, catalog entity.DepartmentCatalog, failOpen bool, log *logger.Logger) *SubmitUseCase {
	return &SubmitUseCase{repo: repo, catalog: catalog, failOpen: failOpen, log: log}
}

// Submit procesa un registro candidato y devuelve Success o Rejected(reason).
func (uc *SubmitUseCase) Submit(ctx context.Context, in dto.EmployeeRequest) dto.SubmitResult {
	if anyEmpty(in) {
		return rejected(domain.CodeEmptyField, domain.ErrAllFieldsRequired.Error())
	}

	// El selectbox de la UI original hacía imposible un departamento inválido;
	// con un body HTTP esa garantía no existe.
	if !uc.catalog.Contains(in.Department) {
		return rejected(domain.CodeInvalidDepartment, "Unknown department.")
	}

	date, verr := Validate(in)
	if verr != nil {
		return rejected(verr.Code, verr.Message)
	}

	exists, err := uc.repo.ExistsByEmployeeID(ctx, in.EmployeeID)
	if err != nil {
		if !uc.failOpen {
			return rejected(domain.CodeStorage, err.Error())
		}
		// Riesgo conocido: una DB caída se trata como "sin duplicado" y el
		// insert decide. La constraint única de employee_id sigue cubriendo.
		uc.log.Warn().Err(err).Str("employee_id", in.EmployeeID).
			Msg("chequeo de duplicado falló, se continúa en modo fail-open")
		exists = false
	}
	if exists {
		return rejected(domain.CodeDuplicate, domain.ErrDuplicate.Error())
	}

	record := &entity.Employee{
		Name:          in.Name,
		EmployeeID:    in.EmployeeID,
		Email:         in.Email,
		PhoneNumber:   in.PhoneNumber,
		Department:    in.Department,
		DateOfJoining: date,
		Role:          in.Role,
	}
	if err := uc.repo.Insert(ctx, record); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return rejected(domain.CodeDuplicate, domain.ErrDuplicate.Error())
		}
		uc.log.Error().Err(err).Str("employee_id", in.EmployeeID).Msg("insert de empleado falló")
		return rejected(domain.CodeStorage, err.Error())
	}

	uc.log.Info().Str("employee_id", in.EmployeeID).Str("department", in.Department).
		Msg("empleado registrado")
	return dto.SubmitResult{Accepted: true}
}

// Departments devuelve el catálogo en el orden de carga.
func (uc *SubmitUseCase) Departments() []string {
	return uc.catalog.List()
}

// DefaultForm devuelve el estado al que la UI resetea el formulario tras un
// alta exitosa: primer departamento del catálogo y la fecha de hoy.
func (uc *SubmitUseCase) DefaultForm() dto.FormDefaults {
	return dto.FormDefaults{
		Department:    uc.catalog.Default(),
		DateOfJoining: time.Now().Format(dateLayout),
	}
}

func anyEmpty(in dto.EmployeeRequest) bool {
	return in.Name == "" || in.EmployeeID == "" || in.Email == "" ||
		in.PhoneNumber == "" || in.Department == "" || in.DateOfJoining == "" ||
		in.Role == ""
}

func rejected(code, reason string) dto.SubmitResult {
	return dto.SubmitResult{Accepted: false, Code: code, Reason: reason}
}
