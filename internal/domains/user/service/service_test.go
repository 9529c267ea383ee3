package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog-backend/internal/domains/user/model"
	"microblog-backend/internal/domains/user/repository"
	"microblog-backend/pkg/jwt"
)

func newTestService() ServiceInterface {
	return NewUserService(
		repository.NewMemoryUserRepository(),
		jwt.NewManager("user-service-test-secret"),
		time.Hour,
		72*time.Hour,
	)
}

func TestSignup(t *testing.T) {
	svc := newTestService()

	user, err := svc.Signup(context.Background(), model.SignupRequest{
		Username: "leo",
		Email:    "leo@example.com",
		Password: "hunter2secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "leo", user.Username)
	assert.Equal(t, "leo@example.com", user.Email)
	assert.NotZero(t, user.ID)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, model.SignupRequest{
		Username: "leo",
		Email:    "leo@example.com",
		Password: "hunter2secret",
	})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, model.SignupRequest{
		Username: "leo",
		Email:    "other@example.com",
		Password: "hunter2secret",
	})
	assert.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestSignup_InvalidRequests(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		name string
		req  model.SignupRequest
	}{
		{"missing username", model.SignupRequest{Email: "a@b.com", Password: "hunter2secret"}},
		{"username too short", model.SignupRequest{Username: "ab", Email: "a@b.com", Password: "hunter2secret"}},
		{"bad username characters", model.SignupRequest{Username: "le o!", Email: "a@b.com", Password: "hunter2secret"}},
		{"bad email", model.SignupRequest{Username: "leo", Email: "not-an-email", Password: "hunter2secret"}},
		{"missing password", model.SignupRequest{Username: "leo", Email: "a@b.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tc.req)
			assert.Error(t, err)
		})
	}
}

func TestLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, model.SignupRequest{
		Username: "leo",
		Email:    "leo@example.com",
		Password: "hunter2secret",
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, model.LoginRequest{
		Username: "leo",
		Password: "hunter2secret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, "leo", res.User.Username)

	// The access token carries the identity
	manager := jwt.NewManager("user-service-test-secret")
	claims, err := manager.ParseToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "leo", claims.Username)
	assert.Equal(t, "access", claims.Type)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, model.SignupRequest{
		Username: "leo",
		Email:    "leo@example.com",
		Password: "hunter2secret",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, model.LoginRequest{Username: "leo", Password: "wrong"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLogin_UnknownUserGetsTheSameError(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}
