package entity

// Credential es un par usuario/contraseña de la lista estática cargada al
// arrancar. Las contraseñas se comparan en texto plano contra esa lista;
// endurecer esto está explícitamente fuera del alcance del sistema.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
