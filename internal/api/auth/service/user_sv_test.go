package authService

import (
	"context"
	"errors"
	"io"
	"testing"

	"ArtisanCraft/internal/api/auth"
	authRepository "ArtisanCraft/internal/api/auth/repository"
	"ArtisanCraft/internal/entity"
	"ArtisanCraft/pkg/bcrypt"
	"ArtisanCraft/pkg/utils"

	"github.com/sirupsen/logrus"
)

type fakeUserStore struct {
	byID    map[string]entity.User
	byEmail map[string]entity.User
}

func (f *fakeUserStore) CreateUser(_ context.Context, user entity.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id string) (entity.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (entity.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) UpdateUser(_ context.Context, user entity.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

type fakeAuthRepository struct {
	users *fakeUserStore
}

func (f *fakeAuthRepository) NewClient(_ bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.users,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newAuthService(t *testing.T) (AuthService, *fakeUserStore) {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := &fakeUserStore{byID: make(map[string]entity.User), byEmail: make(map[string]entity.User)}
	svc := New(logger, &fakeAuthRepository{users: users}, bcrypt.NewWithCost(4), utils.New())
	return svc, users
}

func TestRegisterUser(t *testing.T) {
	svc, users := newAuthService(t)

	err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Name:     "Ravi Kumar",
		Email:    "  Ravi@Gmail.com ",
		Password: "Secret1!",
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	user, ok := users.byEmail["ravi@gmail.com"]
	if !ok {
		t.Fatal("expected user stored under the lowercased email")
	}
	if user.Password == "Secret1!" {
		t.Error("password must be stored hashed")
	}
	if user.Role != entity.RoleCustomer {
		t.Errorf("role = %s, want %s", user.Role, entity.RoleCustomer)
	}

	err = svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Name:     "Other",
		Email:    "ravi@gmail.com",
		Password: "Secret1!",
	})
	if !errors.Is(err, auth.ErrEmailAlreadyInUse) {
		t.Errorf("duplicate register error = %v, want ErrEmailAlreadyInUse", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	if err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Name:     "Ravi Kumar",
		Email:    "ravi@gmail.com",
		Password: "Secret1!",
	}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	resp, err := svc.Login(context.Background(), auth.LoginUserRequest{
		Email:    "ravi@gmail.com",
		Password: "Secret1!",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected an access token")
	}

	_, err = svc.Login(context.Background(), auth.LoginUserRequest{
		Email:    "ravi@gmail.com",
		Password: "wrong",
	})
	if !errors.Is(err, auth.ErrInvalidEmailOrPassword) {
		t.Errorf("wrong password error = %v, want ErrInvalidEmailOrPassword", err)
	}

	_, err = svc.Login(context.Background(), auth.LoginUserRequest{
		Email:    "nobody@gmail.com",
		Password: "Secret1!",
	})
	if !errors.Is(err, auth.ErrInvalidEmailOrPassword) {
		t.Errorf("unknown email error = %v, want ErrInvalidEmailOrPassword", err)
	}
}
