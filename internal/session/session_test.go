package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type answer bool

func (a answer) Confirm(string) bool { return bool(a) }

func TestLoginLogoutCycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store)

	user, err := m.Current(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Equal(t, "Login", Label(user))

	_, err = m.Login(ctx, "c1", " Ana ", " ana@example.com ")
	require.NoError(t, err)

	raw, err := store.Get(ctx, "c1:userSession")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ana","email":"ana@example.com"}`, raw)

	user, err = m.Current(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Logout (Ana)", Label(user))

	out, err := m.Logout(ctx, "c1", answer(false))
	require.NoError(t, err)
	assert.False(t, out)
	user, _ = m.Current(ctx, "c1")
	assert.NotNil(t, user)

	out, err = m.Logout(ctx, "c1", answer(true))
	require.NoError(t, err)
	assert.True(t, out)
	user, _ = m.Current(ctx, "c1")
	assert.Nil(t, user)
}

func TestLoginRequiresBothFields(t *testing.T) {
	m := NewManager(NewMemoryStore())
	_, err := m.Login(context.Background(), "c1", "Ana", "  ")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = m.Login(context.Background(), "c1", "", "ana@example.com")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestSessionsAreScopedPerClient(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())
	_, err := m.Login(ctx, "c1", "Ana", "ana@example.com")
	require.NoError(t, err)

	user, err := m.Current(ctx, "c2")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLogoutWithoutSessionAsksNothing(t *testing.T) {
	m := NewManager(NewMemoryStore())
	asked := false
	out, err := m.Logout(context.Background(), "c1", confirmSpy(&asked))
	require.NoError(t, err)
	assert.False(t, out)
	assert.False(t, asked)
}

func TestCorruptRecordIsIgnored(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "c1:userSession", "{pas du json"))

	user, err := NewManager(store).Current(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, user)
}

type spy struct{ asked *bool }

func (s spy) Confirm(string) bool {
	*s.asked = true
	return true
}

func confirmSpy(asked *bool) Confirmer { return spy{asked: asked} }

func TestLogoutWithAlways(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())
	_, err := m.Login(ctx, "c1", "Ana", "ana@example.com")
	require.NoError(t, err)

	out, err := m.Logout(ctx, "c1", Always(false))
	require.NoError(t, err)
	assert.False(t, out)

	var prompt string
	out, err = m.Logout(ctx, "c1", ConfirmFunc(func(p string) bool {
		prompt = p
		return true
	}))
	require.NoError(t, err)
	assert.True(t, out)
	assert.Equal(t, MsgConfirmLogout, prompt)

	user, err := m.Current(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, user)
}
