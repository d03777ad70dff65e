package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestion-productos-api/internal/application/dto"
	"github.com/jhoicas/gestion-productos-api/internal/domain"
	"github.com/jhoicas/gestion-productos-api/internal/domain/entity"
	"github.com/jhoicas/gestion-productos-api/internal/domain/repository"
	"github.com/jhoicas/gestion-productos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt y persiste con rol
// "User". Devuelve ErrEmailAlreadyExists si el email (normalizado a
// minúsculas) ya existe. No emite token: el login es un paso aparte.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) error {
	email := normalizeEmail(in.Email)
	existing, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		ID:            uuid.New().String(),
		Username:      in.Username,
		Email:         email,
		PasswordHash:  string(hash),
		Role:          entity.RoleUser,
		FechaCreacion: time.Now().UTC(),
	}
	return uc.userRepo.Create(user)
}

// Login verifica email/password y genera el JWT de sesión. Email desconocido
// y password incorrecto devuelven el mismo ErrUnauthorized para no revelar
// cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// normalizeEmail: la unicidad y el login comparan el email en minúsculas.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
