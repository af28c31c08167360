package dto

// LoginRequest entrada para login (usuario + contraseña en texto plano,
// comparados contra la lista estática).
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT para el panel de administración.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
