package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"personamart/business/persona"
	"personamart/domain"
	"personamart/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byID        map[uint]domain.User
	byEmail     map[string]domain.User
	lastLoginAt map[uint]bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:        make(map[uint]domain.User),
		byEmail:     make(map[string]domain.User),
		lastLoginAt: make(map[uint]bool),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = uint(len(f.byID) + 1)
	f.byID[user.ID] = *user
	f.byEmail[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, _, _ int) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return errors.New("user not found")
	}
	f.byID[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.byID[id]; !ok {
		return errors.New("user not found")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) TouchLastLogin(_ context.Context, id uint) error {
	f.lastLoginAt[id] = true
	return nil
}

type fakeTokenRepo struct {
	tokens map[string]string // token -> userID
}

func (f *fakeTokenRepo) StoreToken(_ context.Context, userID, token, _, _ string, _ time.Duration) error {
	if f.tokens == nil {
		f.tokens = make(map[string]string)
	}
	f.tokens[token] = userID
	return nil
}

func (f *fakeTokenRepo) ValidateToken(_ context.Context, token string) (string, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return "", errors.New("token not found or expired")
	}
	return userID, nil
}

func (f *fakeTokenRepo) DeleteToken(_ context.Context, _, token string) error {
	delete(f.tokens, token)
	return nil
}

func newTestService(repo *fakeUserRepo, tokens TokenRepository) *userService {
	utils.InitJWT("test-secret")
	return NewUserService(repo, tokens, persona.NewCatalog(), validator.New())
}

func TestRegisterDefaultsAndNormalization(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, nil)

	created, err := svc.Register(context.Background(), &domain.User{
		Name:        "Dana",
		Email:       "dana@example.com",
		Password:    "secret123",
		PersonaType: "no_such_persona",
		IncomeLevel: "gigantic",
	})
	require.NoError(t, err)

	assert.Equal(t, persona.DefaultPersona, created.PersonaType)
	assert.Equal(t, domain.IncomeMedium, created.IncomeLevel)
	assert.Equal(t, RoleCustomer, created.Role)
	assert.Empty(t, created.Password, "password must never leave the service")

	stored := repo.byEmail["dana@example.com"]
	assert.NotEqual(t, "secret123", stored.Password, "password must be hashed at rest")
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), nil)

	_, err := svc.Register(context.Background(), &domain.User{
		Name: "X", Email: "not-an-email", Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid email format", err.Error())

	_, err = svc.Register(context.Background(), &domain.User{
		Name: "X", Email: "x@example.com", Password: "shrt",
	})
	require.Error(t, err)
	assert.Equal(t, "password must be at least 6 characters", err.Error())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, nil)

	first := domain.User{Name: "A", Email: "a@example.com", Password: "secret123"}
	_, err := svc.Register(context.Background(), &first)
	require.NoError(t, err)

	second := domain.User{Name: "B", Email: "a@example.com", Password: "secret456"}
	_, err = svc.Register(context.Background(), &second)
	require.Error(t, err)
	assert.Equal(t, "email already exists", err.Error())
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	tokens := &fakeTokenRepo{}
	svc := newTestService(repo, tokens)

	_, err := svc.Register(context.Background(), &domain.User{
		Name: "Dana", Email: "dana@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "dana@example.com", "secret123", "127.0.0.1", "test-agent")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.Password)
	assert.True(t, repo.lastLoginAt[user.ID])

	userID, err := svc.ValidateTokenFromRedis(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)

	require.NoError(t, svc.Logout(context.Background(), user.ID, token))
	_, err = svc.ValidateTokenFromRedis(context.Background(), token)
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, nil)

	_, err := svc.Register(context.Background(), &domain.User{
		Name: "Dana", Email: "dana@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "dana@example.com", "wrong", "", "")
	require.Error(t, err)
	assert.Equal(t, "incorrect password", err.Error())
}

func TestUpdateUserPartial(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, nil)

	created, err := svc.Register(context.Background(), &domain.User{
		Name: "Dana", Email: "dana@example.com", Password: "secret123", Age: 30,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(context.Background(), created.ID, &domain.User{
		Location:    "Austin",
		PersonaType: "luxury_lover",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dana", updated.Name, "unset fields keep their value")
	assert.Equal(t, 30, updated.Age)
	assert.Equal(t, "Austin", updated.Location)
	assert.Equal(t, "luxury_lover", updated.PersonaType)
}
