package sessionstore_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnhappykids/appcore/core/session"
	sessionstore "github.com/tnhappykids/appcore/storage/session"
	testutil "github.com/tnhappykids/appcore/tests"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := sessionstore.NewFileStore(memfs.New(), "session")
	require.NoError(t, err)

	require.NoError(t, store.Set(session.KeyUserID, "42"))

	got, ok, err := store.Get(session.KeyUserID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", got)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := sessionstore.NewFileStore(memfs.New(), "session")
	require.NoError(t, err)

	require.NoError(t, store.Set(session.KeyToken, "old"))
	require.NoError(t, store.Set(session.KeyToken, "new"))

	got, ok, err := store.Get(session.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", got)
}

func TestFileStoreAbsentKey(t *testing.T) {
	store, err := sessionstore.NewFileStore(memfs.New(), "session")
	require.NoError(t, err)

	_, ok, err := store.Get(session.KeyRole)
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting what was never written is not an error
	assert.NoError(t, store.Delete(session.KeyRole))
}

func TestFileStoreDelete(t *testing.T) {
	store, err := sessionstore.NewFileStore(memfs.New(), "session")
	require.NoError(t, err)

	require.NoError(t, store.Set(session.KeyAuth, "true"))
	require.NoError(t, store.Delete(session.KeyAuth))

	_, ok, err := store.Get(session.KeyAuth)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	fs := memfs.New()

	first, err := sessionstore.NewFileStore(fs, "session")
	require.NoError(t, err)
	saved := session.Session{
		UserID:        "42",
		Token:         "opaque-token",
		Role:          session.RoleTeacher,
		Branch:        "Anna Nagar",
		Authenticated: true,
	}
	require.NoError(t, session.NewService(first, testutil.NewLogger(t)).Save(saved))

	// a fresh store over the same filesystem sees the committed session
	second, err := sessionstore.NewFileStore(fs, "session")
	require.NoError(t, err)
	got := session.NewService(second, testutil.NewLogger(t)).Load()
	assert.Equal(t, "42", got.UserID)
	assert.Equal(t, session.RoleTeacher, got.Role)
}
