package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memoryRepo struct {
	users   map[string]*User
	history []MedicalHistory
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[string]*User)}
}

func (r *memoryRepo) Create(ctx context.Context, u *User) error {
	r.users[u.Username] = u
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (r *memoryRepo) CreateHistory(ctx context.Context, h *MedicalHistory) error {
	r.history = append(r.history, *h)
	return nil
}

func (r *memoryRepo) ListHistory(ctx context.Context, userID uuid.UUID) ([]MedicalHistory, error) {
	var out []MedicalHistory
	for _, h := range r.history {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *memoryRepo) DeleteHistory(ctx context.Context, userID, id uuid.UUID) error {
	for i, h := range r.history {
		if h.UserID == userID && h.ID == id {
			r.history = append(r.history[:i], r.history[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

const testSecret = "test-secret"

func newTestUserService(repo Repository) Service {
	return NewService(repo, testSecret, time.Hour)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestUserService(repo)

	u, err := svc.Register(context.Background(), RegisterRequest{
		Username: "rahim", Email: "rahim@example.com", Password: "s3cret",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := newTestUserService(newMemoryRepo())
	_, err := svc.Register(context.Background(), RegisterRequest{Username: "rahim"})
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestUserService(repo)

	req := RegisterRequest{Username: "rahim", Email: "a@b.c", Password: "pw"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginAndParseTokenRoundTrip(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestUserService(repo)

	u, err := svc.Register(context.Background(), RegisterRequest{
		Username: "karima", Email: "karima@example.com", Password: "pw123",
	})
	require.NoError(t, err)

	token, loggedIn, err := svc.Login(context.Background(), "karima", "pw123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, loggedIn.ID)

	identity, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, identity.UserID)
	assert.False(t, identity.IsAdmin)
}

func TestLoginCarriesAdminFlagIntoToken(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestUserService(repo)

	u, err := svc.Register(context.Background(), RegisterRequest{
		Username: "admin", Email: "admin@example.com", Password: "pw123",
	})
	require.NoError(t, err)
	u.IsAdmin = true

	token, _, err := svc.Login(context.Background(), "admin", "pw123")
	require.NoError(t, err)

	identity, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.True(t, identity.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "karima", Email: "karima@example.com", Password: "pw123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "karima", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	repoA := newMemoryRepo()
	svcA := NewService(repoA, "secret-a", time.Hour)
	_, err := svcA.Register(context.Background(), RegisterRequest{
		Username: "u", Email: "u@example.com", Password: "pw",
	})
	require.NoError(t, err)
	token, _, err := svcA.Login(context.Background(), "u", "pw")
	require.NoError(t, err)

	svcB := NewService(newMemoryRepo(), "secret-b", time.Hour)
	_, err = svcB.ParseToken(token)
	assert.Error(t, err)
}

func TestListConditionsProjectsHistory(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestUserService(repo)
	userID := uuid.New()

	require.NoError(t, svc.AddHistory(context.Background(), userID, &MedicalHistory{
		Condition: "Asthma", Notes: "uses inhaler", IsChronic: true,
	}))
	require.NoError(t, svc.AddHistory(context.Background(), userID, &MedicalHistory{
		Condition: "Malaria",
	}))

	entries, err := svc.ListConditions(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Asthma", entries[0].Condition)
	assert.True(t, entries[0].IsChronic)
	assert.Equal(t, "uses inhaler", entries[0].Notes)
	assert.Equal(t, "Malaria", entries[1].Condition)
}

func TestAddHistoryRequiresCondition(t *testing.T) {
	svc := newTestUserService(newMemoryRepo())
	err := svc.AddHistory(context.Background(), uuid.New(), &MedicalHistory{Notes: "no condition"})
	assert.Error(t, err)
}
