package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scala-gestao/frota-api/internal/application/auth"
	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/domain"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(u *entity.User) error {
	cp := *u
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	if u, ok := m.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

var testJWTCfg = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "frota-api-test",
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Todo registro nace como "visitante"; la promoción a admin es manual.
func TestRegister_RolSiempreVisitante(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTCfg)

	out, err := uc.Register(dto.RegisterRequest{
		Name:     "Carlos Silva",
		Email:    "carlos@frota.com",
		Password: "secreta123",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.UserRoleVisitor, out.Role)
	assert.Equal(t, "Carlos Silva", out.Name)
	assert.NotEmpty(t, out.ID)
}

func TestRegister_NombreVacioUsaElEmail(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTCfg)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@frota.com",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@frota.com", out.Name)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTCfg)

	in := dto.RegisterRequest{Email: "carlos@frota.com", Password: "secreta123"}
	_, err := uc.Register(in)
	require.NoError(t, err)

	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTCfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TokenConIdentidadDelUsuario(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	registered, err := uc.Register(dto.RegisterRequest{
		Name:     "Carlos Silva",
		Email:    "carlos@frota.com",
		Password: "secreta123",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "carlos@frota.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.User.ID)

	// El token debe llevar los claims del usuario
	userID, name, role, err := jwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "Carlos Silva", name)
	assert.Equal(t, entity.UserRoleVisitor, role)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@frota.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTCfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "carlos@frota.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "carlos@frota.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
