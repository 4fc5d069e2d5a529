package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockinterview/internal/model"
)

type fakeUserRepo struct {
	users  map[string]*model.User // keyed by email
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	c := *user
	r.users[user.Email] = &c
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewAuthService(repo, "test-secret"), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &model.RegisterRequest{
		Name:            "Ada",
		Email:           "Ada@Example.com",
		Password:        "hunter22",
		Profession:      "Backend Engineer",
		ExperienceLevel: "senior",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "Backend Engineer", resp.User.Profession)

	login, err := svc.Login(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &model.RegisterRequest{
		Name: "Imposter", Email: "ada@example.com", Password: "other",
	})
	assert.ErrorIs(t, err, ErrUserExists)
	assert.Len(t, repo.users, 1)
	assert.Equal(t, "Ada", repo.users["ada@example.com"].Name)
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordIsStoredHashed(t *testing.T) {
	svc, repo := newAuthFixture()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	stored := repo.users["ada@example.com"]
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestValidateToken(t *testing.T) {
	svc, _ := newAuthFixture()

	resp, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)

	_, err = svc.ValidateToken(resp.Token + "tampered")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewAuthService(newFakeUserRepo(), "different-secret")
	_, err = other.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
