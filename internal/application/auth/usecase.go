// Package auth implementa el inicio de sesión contra la tabla de usuarios.
package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-qr-api/internal/application/dto"
	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/repository"
	"github.com/jhoicas/almacen-qr-api/pkg/jwt"
)

// UseCase valida credenciales y emite el token de sesión.
type UseCase struct {
	userRepo   repository.UserRepository
	jwtSecret  string
	jwtIssuer  string
	expMinutes int
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(userRepo repository.UserRepository, jwtSecret, jwtIssuer string, expMinutes int) *UseCase {
	return &UseCase{
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		jwtIssuer:  jwtIssuer,
		expMinutes: expMinutes,
	}
}

// Login verifica usuario y contraseña. La hoja arrastra cuentas viejas con la
// contraseña en claro; si la celda no parece un hash bcrypt se compara directo
// en tiempo constante.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if strings.HasPrefix(user.Password, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
			return nil, domain.ErrUnauthorized
		}
	} else {
		if subtle.ConstantTimeCompare([]byte(user.Password), []byte(in.Password)) != 1 {
			return nil, domain.ErrUnauthorized
		}
	}

	token, err := jwt.Generate(uc.jwtSecret, user.Username, user.Role, user.Fullname, uc.jwtIssuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			Username: user.Username,
			Role:     user.Role,
			Fullname: user.Fullname,
		},
	}, nil
}
