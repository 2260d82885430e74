package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-qr-api/internal/application/dto"
	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/pkg/jwt"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (s *stubUserRepo) List(_ context.Context) ([]*entity.User, error) { return nil, nil }

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return s.users[username], nil
}

func (s *stubUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }
func (s *stubUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }
func (s *stubUserRepo) Delete(_ context.Context, _ string) error       { return nil }

const testSecret = "clave-de-prueba"

func newTestUseCase(users map[string]*entity.User) *UseCase {
	return NewUseCase(&stubUserRepo{users: users}, testSecret, "almacen-qr-api", 60)
}

func TestLogin_ConHashBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	uc := newTestUseCase(map[string]*entity.User{
		"maria": {Username: "maria", Password: string(hash), Role: entity.RolePetugas, Fullname: "María Gómez"},
	})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "maria", resp.User.Username)

	username, role, fullname, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "maria", username)
	assert.Equal(t, entity.RolePetugas, role)
	assert.Equal(t, "María Gómez", fullname)
}

func TestLogin_CuentaViejaEnClaro(t *testing.T) {
	uc := newTestUseCase(map[string]*entity.User{
		"admin": {Username: "admin", Password: "admin123", Role: entity.RoleAdmin},
	})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	uc := newTestUseCase(map[string]*entity.User{
		"maria": {Username: "maria", Password: string(hash)},
	})

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newTestUseCase(map[string]*entity.User{})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_EntradaVacia(t *testing.T) {
	uc := newTestUseCase(map[string]*entity.User{})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
