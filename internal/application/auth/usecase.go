package auth

import (
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase valida credenciales contra las listas estáticas cargadas al
// arrancar y emite tokens de sesión para administradores. Las listas no
// mutan durante la vida del proceso.
type AuthUseCase struct {
	admins []entity.Credential
	users  []entity.Credential
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso con las listas de credenciales.
func NewAuthUseCase(admins, users []entity.Credential, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{admins: admins, users: users, jwtCfg: jwtCfg}
}

// IsAdmin verifica usuario y contraseña contra la lista de administradores.
// Escaneo lineal con comparación exacta de ambos campos; las contraseñas
// son texto plano por contrato del archivo users.json.
func (uc *AuthUseCase) IsAdmin(username, password string) bool {
	return matches(uc.admins, username, password)
}

// IsUser verifica usuario y contraseña contra la lista de usuarios regulares.
func (uc *AuthUseCase) IsUser(username, password string) bool {
	return matches(uc.users, username, password)
}

// Login autentica y emite un JWT de administrador.
// Un usuario regular válido recibe ErrNotAdmin (el panel es solo para admins);
// cualquier otra combinación recibe ErrInvalidCredentials.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.IsAdmin(in.Username, in.Password) {
		token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, jwt.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{Token: token, Username: in.Username, Role: jwt.RoleAdmin}, nil
	}
	if uc.IsUser(in.Username, in.Password) {
		return nil, domain.ErrNotAdmin
	}
	return nil, domain.ErrInvalidCredentials
}

func matches(list []entity.Credential, username, password string) bool {
	for _, c := range list {
		if c.Username == username && c.Password == password {
			return true
		}
	}
	return false
}
