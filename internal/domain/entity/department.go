package entity

// DepartmentCatalog es la lista ordenada e inmutable de departamentos
// válidos, cargada una sola vez al arrancar. El primer elemento es la
// selección por defecto del formulario.
type DepartmentCatalog struct {
	names []string
}

// NewDepartmentCatalog construye el catálogo copiando la lista recibida,
// para que el llamador no pueda mutarla después.
func NewDepartmentCatalog(names []string) DepartmentCatalog {
	cp := make([]string, len(names))
	copy(cp, names)
	return DepartmentCatalog{names: cp}
}

// List devuelve los departamentos en el orden del archivo de origen.
// Cada llamada devuelve una copia nueva con la misma secuencia.
func (c DepartmentCatalog) List() []string {
	cp := make([]string, len(c.names))
	copy(cp, c.names)
	return cp
}

// Default devuelve el departamento por defecto (el primero del catálogo).
func (c DepartmentCatalog) Default() string {
	if len(c.names) == 0 {
		return ""
	}
	return c.names[0]
}

// Contains verifica pertenencia por comparación exacta de strings.
func (c DepartmentCatalog) Contains(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// Len devuelve la cantidad de departamentos.
func (c DepartmentCatalog) Len() int {
	return len(c.names)
}
