package usecase

import (
	"context"
	"errors"
	"testing"

	"servitec/internal/domain/entities"
	mock_interfaces "servitec/internal/usecase/interfaces/mocks"
	"servitec/pkg"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	stored := entities.User{
		ID:           "u-1",
		Email:        "ana@servitec.pe",
		PasswordHash: string(hash),
		Role:         entities.UserRoleAdmin,
	}

	t.Run("empty credentials", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Login(context.Background(), "  ", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "nadie@servitec.pe").Return(entities.User{}, nil)

		_, err := uc.Login(context.Background(), "nadie@servitec.pe", "whatever")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@servitec.pe").Return(stored, nil)

		_, err := uc.Login(context.Background(), "ana@servitec.pe", "not-the-pass")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("email is matched case insensitively", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@servitec.pe").Return(stored, nil)

		got, err := uc.Login(context.Background(), "  ANA@Servitec.PE ", "secret-pass")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "u-1" {
			t.Fatalf("unexpected user: %+v", got)
		}
	})
}

func TestUserUseCase_Create(t *testing.T) {
	input := func() CreateUserInput {
		return CreateUserInput{
			Name:     "Ana Torres",
			Email:    "Ana@Servitec.pe",
			Password: "secret-pass",
			Role:     entities.UserRoleTechnician,
		}
	}

	t.Run("technician cannot create users", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Create(context.Background(), techActor, input())
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("short password and bad role", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		in := input()
		in.Password = "short"
		in.Role = "MANAGER"
		_, err := uc.Create(context.Background(), adminActor, in)
		var v *pkg.ValidationError
		if !errors.As(err, &v) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(v.Fields) != 2 {
			t.Fatalf("unexpected fields: %+v", v.Fields)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@servitec.pe").Return(entities.User{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), adminActor, input())
		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@servitec.pe").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" {
					t.Fatalf("expected a generated id")
				}
				if u.Email != "ana@servitec.pe" {
					t.Fatalf("expected lowercased email, got %s", u.Email)
				}
				if u.PasswordHash == "secret-pass" || u.PasswordHash == "" {
					t.Fatalf("password must be stored hashed")
				}
				if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-pass")) != nil {
					t.Fatalf("hash does not match the password")
				}
				return u, nil
			},
		)

		if _, err := uc.Create(context.Background(), adminActor, input()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_List(t *testing.T) {
	t.Run("technician is rejected", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.List(context.Background(), techActor)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("admin lists everyone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.User{{ID: "a"}, {ID: "b"}}, nil)

		users, err := uc.List(context.Background(), adminActor)
		if err != nil || len(users) != 2 {
			t.Fatalf("unexpected result: %v, %v", users, err)
		}
	})
}
