package service

import (
	"context"
	"testing"
	"time"

	"github.com/spendtrack/spendtrack-go/internal/model"
	"github.com/spendtrack/spendtrack-go/internal/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(nil),
		"test-secret",
		time.Hour,
	)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestAuthService()

	cases := []model.RegisterRequest{
		{Username: "", Email: "alice@x.com", Password: "password1"},
		{Username: "alice", Email: "", Password: "password1"},
		{Username: "alice", Email: "alice@x.com", Password: ""},
		{Username: "   ", Email: "alice@x.com", Password: "password1"},
	}

	for _, req := range cases {
		_, err := svc.Register(context.Background(), req)
		if err != ErrMissingFields {
			t.Errorf("Register(%+v) error = %v, want ErrMissingFields", req, err)
		}
	}
}

func TestRegister_PasswordTooShort(t *testing.T) {
	svc := newTestAuthService()

	// Length is counted in characters, not bytes.
	for _, password := range []string{"12345", "파스워드1"} {
		_, err := svc.Register(context.Background(), model.RegisterRequest{
			Username: "alice",
			Email:    "alice@x.com",
			Password: password,
		})

		if err != ErrPasswordTooShort {
			t.Errorf("Register with password %q error = %v, want ErrPasswordTooShort", password, err)
		}
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Identifier: "alice",
		Password:   "",
	})

	if err != ErrMissingCredentials {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}

	_, err = svc.Login(context.Background(), model.LoginRequest{
		Identifier: "",
		Password:   "password1",
	})

	if err != ErrMissingCredentials {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
}
