package usecase

import (
	"context"
	"errors"
	"servitec/internal/domain/entities"
	"servitec/internal/usecase/interfaces"
	"servitec/pkg"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// CreateUserInput is the admin-facing payload for registering an employee.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entities.UserRole
}

// IUserUseCase covers login and admin user management. Login only resolves an
// identity; all authorization decisions stay in the gated usecases that
// receive the resulting Actor.

type IUserUseCase interface {
	Login(ctx context.Context, email, password string) (entities.User, error)
	Create(ctx context.Context, actor entities.Actor, in CreateUserInput) (entities.User, error)
	List(ctx context.Context, actor entities.Actor) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Login(ctx context.Context, email, password string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.User{}, ErrInvalidCredentials
	}

	usr, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" {
		return entities.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		return entities.User{}, ErrInvalidCredentials
	}
	return usr, nil
}

func (u *UserUseCase) Create(ctx context.Context, actor entities.Actor, in CreateUserInput) (entities.User, error) {
	if !actor.IsAdmin() {
		return entities.User{}, ErrForbidden
	}

	v := &pkg.ValidationError{}
	if strings.TrimSpace(in.Name) == "" {
		v.Add("name", "name is required")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		v.Add("email", "email is required")
	}
	if len(in.Password) < 8 {
		v.Add("password", "password must be at least 8 characters")
	}
	if !in.Role.Valid() {
		v.Add("role", "role must be ADMIN or TECHNICIAN")
	}
	if err := v.OrNil(); err != nil {
		return entities.User{}, err
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	usr := entities.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, usr)
}

func (u *UserUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return u.repo.List(ctx)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return usr, nil
}
