package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Duncanian/develop-v2/internal/adapter/logger"
	"github.com/Duncanian/develop-v2/internal/domain"
	"github.com/Duncanian/develop-v2/internal/token"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.Username]; ok {
		return domain.ErrUserExists
	}
	user.ID = len(r.users) + 1
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrBadCredentials
	}
	return user, nil
}

func newTestService() (*Service, *fakeUserRepo, *token.Manager) {
	repo := newFakeUserRepo()
	tokens := token.NewManager("test-secret", time.Hour)
	return NewService(repo, tokens, logger.NewNop()), repo, tokens
}

func TestSignupHashesPassword(t *testing.T) {
	svc, repo, _ := newTestService()

	user, err := svc.Signup(context.Background(), "dan", "dan@example.com", "hunter2")
	require.NoError(t, err)

	stored := repo.users["dan"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter2", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))
	assert.Equal(t, user.ID, stored.ID)
}

func TestSignupDuplicate(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "dan", "dan@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "dan", "other@example.com", "hunter2")
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestLogin(t *testing.T) {
	svc, _, tokens := newTestService()
	ctx := context.Background()

	user, err := svc.Signup(ctx, "dan", "dan@example.com", "hunter2")
	require.NoError(t, err)

	signed, err := svc.Login(ctx, "dan", "hunter2")
	require.NoError(t, err)

	claims, err := tokens.Decode(signed)
	require.NoError(t, err)
	require.NotNil(t, claims.UserID)
	require.NotNil(t, claims.Admin)
	assert.Equal(t, user.ID, *claims.UserID)
	assert.False(t, *claims.Admin)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "dan", "dan@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "dan", "wrong")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), "ghost", "hunter2")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}
