// Package auth implementa registro, login y logout sobre identidades locales,
// y publica el stream de cambios de identidad que alimenta al estado de
// sesión (el equivalente del onAuthStateChanged del proveedor gestionado).
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitta-app/vitta-api/internal/application/dto"
	"github.com/vitta-app/vitta-api/internal/domain"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/internal/domain/repository"
	"github.com/vitta-app/vitta-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// IdentityListener recibe cada cambio de identidad (nil = signed out).
type IdentityListener func(*entity.Identity)

// UseCase casos de uso de autenticación: registro, login y logout.
type UseCase struct {
	users     repository.UserRepository
	jwtCfg    JWTConfig
	listeners []IdentityListener
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// OnIdentityChange suscribe un listener al stream de identidad. Registrar los
// listeners ANTES de servir tráfico: la lista no está protegida contra
// suscripción concurrente.
func (uc *UseCase) OnIdentityChange(fn IdentityListener) {
	uc.listeners = append(uc.listeners, fn)
}

// EmitCurrent dispara el stream con la identidad dada. El proveedor gestionado
// notifica al suscribirse aunque no haya sesión; llamar con nil al arrancar
// reproduce ese comportamiento y resuelve el readiness de la sesión.
func (uc *UseCase) EmitCurrent(id *entity.Identity) {
	for _, fn := range uc.listeners {
		fn(id)
	}
}

// Register crea un usuario con password bcrypt y lo deja autenticado.
// Devuelve domain.ErrEmailExists si el email ya está registrado.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.authenticated(user)
}

// Login verifica email/password y genera el token.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.authenticated(user)
}

// SignOut limpia la identidad del stream.
func (uc *UseCase) SignOut() {
	uc.EmitCurrent(nil)
}

// Me devuelve la vista pública del usuario con ese uid.
func (uc *UseCase) Me(ctx context.Context, uid string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (uc *UseCase) authenticated(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.EmitCurrent(&entity.Identity{UID: user.ID, Email: user.Email})
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
