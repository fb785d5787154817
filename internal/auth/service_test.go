package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/whitemassif/website/internal/auth"
)

const testBcryptCost = 4 // low cost for fast tests

type mockRepo struct {
	listFn func(ctx context.Context) ([]auth.Operator, error)
}

func (m *mockRepo) List(ctx context.Context) ([]auth.Operator, error) {
	return m.listFn(ctx)
}

func setupService(t *testing.T, names ...string) (*auth.Service, map[string]string) {
	t.Helper()

	keygen := auth.NewService(&mockRepo{}, testBcryptCost)
	hashes := map[string]string{}
	raw := map[string]string{}
	for _, name := range names {
		key, hash, err := keygen.GenerateKey()
		require.NoError(t, err)
		hashes[name] = hash
		raw[name] = key
	}

	repo, err := auth.NewStaticRepository(hashes)
	require.NoError(t, err)
	return auth.NewService(repo, testBcryptCost), raw
}

// --- GenerateKey Tests ---

func TestGenerateKey_Format(t *testing.T) {
	svc := auth.NewService(&mockRepo{}, testBcryptCost)

	rawKey, hash, err := svc.GenerateKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rawKey, auth.KeyPrefix), "raw key should start with wm_")
	assert.NotEmpty(t, hash, "hash should not be empty")

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(rawKey))
	assert.NoError(t, err, "hash should verify against raw key")
}

func TestGenerateKey_Uniqueness(t *testing.T) {
	svc := auth.NewService(&mockRepo{}, testBcryptCost)

	key1, _, err := svc.GenerateKey()
	require.NoError(t, err)
	key2, _, err := svc.GenerateKey()
	require.NoError(t, err)

	assert.NotEqual(t, key1, key2, "generated keys should be unique")
}

// --- Authenticate Tests ---

func TestAuthenticate_ValidKey(t *testing.T) {
	svc, raw := setupService(t, "ops", "deploy")

	identity, err := svc.Authenticate(context.Background(), raw["deploy"])
	require.NoError(t, err)

	assert.Equal(t, "deploy", identity.Operator)
}

func TestAuthenticate_WrongKey(t *testing.T) {
	svc, _ := setupService(t, "ops")

	identity, err := svc.Authenticate(context.Background(), auth.KeyPrefix+"not-the-key")

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, auth.ErrInvalidKey)
}

func TestAuthenticate_ShortKey(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Authenticate(context.Background(), "wm_")

	assert.ErrorIs(t, err, auth.ErrInvalidKey)
}

func TestAuthenticate_RepositoryError(t *testing.T) {
	svc := auth.NewService(&mockRepo{listFn: func(context.Context) ([]auth.Operator, error) {
		return nil, assert.AnError
	}}, testBcryptCost)

	_, err := svc.Authenticate(context.Background(), "wm_somekeyvalue")

	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidKey)
	assert.ErrorIs(t, err, assert.AnError)
}

// --- StaticRepository Tests ---

func TestStaticRepository_SortsAndCopies(t *testing.T) {
	repo, err := auth.NewStaticRepository(map[string]string{
		"zed":   "$2a$04$abc",
		" ann ": "$2a$04$def",
	})
	require.NoError(t, err)

	ops, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "ann", ops[0].Name)
	assert.Equal(t, "zed", ops[1].Name)

	ops[0].Name = "mutated"
	again, _ := repo.List(context.Background())
	assert.Equal(t, "ann", again[0].Name)
}

func TestStaticRepository_RejectsPlaintext(t *testing.T) {
	_, err := auth.NewStaticRepository(map[string]string{"ops": "hunter2"})

	assert.ErrorIs(t, err, auth.ErrMalformedHash)
}
