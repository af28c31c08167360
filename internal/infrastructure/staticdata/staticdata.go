// Package staticdata carga las listas estáticas del sistema (credenciales y
// departamentos) desde archivos JSON al arrancar. Un archivo ausente,
// malformado o vacío es un error de configuración: el proceso no debe servir.
package staticdata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// Credentials son las listas de admins y usuarios leídas de users.json.
// Inmutables durante la vida del proceso; se recargan solo con un reinicio.
type Credentials struct {
	Admins []entity.Credential `json:"admins"`
	Users  []entity.Credential `json:"users"`
}

// LoadCredentials lee users.json con la estructura {"admins":[...], "users":[...]}.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parsear %s: %w", path, err)
	}
	if len(creds.Admins) == 0 {
		return nil, fmt.Errorf("%s: la lista de admins está vacía, nadie podría iniciar sesión", path)
	}
	return &creds, nil
}

// LoadDepartments lee departments.json con la estructura {"departments":[...]}.
// El orden del archivo se preserva: el primer elemento es el valor por
// defecto del formulario.
func LoadDepartments(path string) (entity.DepartmentCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.DepartmentCatalog{}, fmt.Errorf("leer %s: %w", path, err)
	}
	var doc struct {
		Departments []string `json:"departments"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return entity.DepartmentCatalog{}, fmt.Errorf("parsear %s: %w", path, err)
	}
	if len(doc.Departments) == 0 {
		return entity.DepartmentCatalog{}, fmt.Errorf("%s: la lista de departamentos está vacía, el formulario no puede presentarse", path)
	}
	return entity.NewDepartmentCatalog(doc.Departments), nil
}
