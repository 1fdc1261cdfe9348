package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"app/internal/usecase"
)

type stubIssuer struct {
	token string
	err   error
}

func (s *stubIssuer) Issue(email string, now time.Time) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return s.token, now.Add(15 * time.Minute), nil
}

func newAuthUsecase(t *testing.T, issuer *stubIssuer) *usecase.AuthUsecase {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	assert.NoError(t, err)

	return usecase.NewAuthUsecase(
		"admin@example.com",
		string(hash),
		usecase.NewBcryptPasswordVerifier(),
		issuer,
		&fixedClock{t: cartTestTime},
	)
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	uc := newAuthUsecase(t, &stubIssuer{token: "signed-token"})

	out, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "secret-password",
	})
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, "admin@example.com", out.Email)
	assert.Equal(t, int(15*time.Minute/time.Second), out.ExpiresIn)
}

func TestAuthUsecase_Login_WrongEmail(t *testing.T) {
	uc := newAuthUsecase(t, &stubIssuer{token: "signed-token"})

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "someone@example.com",
		Password: "secret-password",
	})
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	uc := newAuthUsecase(t, &stubIssuer{token: "signed-token"})

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "nope",
	})
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestAuthUsecase_Login_MissingInput(t *testing.T) {
	uc := newAuthUsecase(t, &stubIssuer{token: "signed-token"})

	_, err := uc.Login(context.Background(), usecase.LoginInput{Email: "", Password: "x"})
	assert.ErrorContains(t, err, "required")

	_, err = uc.Login(context.Background(), usecase.LoginInput{Email: "admin@example.com", Password: ""})
	assert.ErrorContains(t, err, "required")
}

func TestAuthUsecase_Login_IssuerFailure(t *testing.T) {
	uc := newAuthUsecase(t, &stubIssuer{err: errors.New("sign failure")})

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "secret-password",
	})
	assert.ErrorContains(t, err, "internal error")
}
