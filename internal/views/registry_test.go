package views

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenGivesEmptyCart(t *testing.T) {
	r := NewRegistry(time.Minute)
	v := r.Open()

	require.NotEmpty(t, v.ID)
	assert.Equal(t, 0, v.Cart.Len())
	assert.Equal(t, "0.00", v.Cart.Snapshot().GrandTotal)
	assert.Contains(t, string(v.HTML.HTML()), "0.00")
	assert.Equal(t, 1, r.Len())
}

func TestViewsAreIndependent(t *testing.T) {
	r := NewRegistry(time.Minute)
	a := r.Open()
	b := r.Open()

	require.NoError(t, r.With(a.ID, func(v *View) {
		v.Cart.AddItem("Pizza", decimal.RequireFromString("9.99"))
	}))

	assert.Equal(t, 1, a.Cart.Len())
	assert.Equal(t, 0, b.Cart.Len())
	assert.Contains(t, string(a.HTML.HTML()), "Pizza")
}

func TestWithUnknownView(t *testing.T) {
	r := NewRegistry(time.Minute)
	err := r.With("nope", func(*View) { t.Fatal("ne doit pas être appelé") })
	assert.True(t, errors.Is(err, ErrViewNotFound))
}

func TestWithSerializesMutations(t *testing.T) {
	r := NewRegistry(time.Minute)
	v := r.Open()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.With(v.ID, func(v *View) {
				v.Cart.AddItem("Espresso", decimal.RequireFromString("2.00"))
			})
		}()
	}
	wg.Wait()

	lines := v.Cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 50, lines[0].Quantity)
	assert.Equal(t, "100.00", v.Cart.Snapshot().GrandTotal)
}

func TestSweepEvictsIdleViews(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(10 * time.Minute)
	r.now = func() time.Time { return now }

	old := r.Open()
	now = now.Add(8 * time.Minute)
	fresh := r.Open()
	now = now.Add(5 * time.Minute)

	assert.Equal(t, 1, r.Sweep())
	assert.Error(t, r.With(old.ID, func(*View) {}))
	assert.NoError(t, r.With(fresh.ID, func(*View) {}))
}

func TestClose(t *testing.T) {
	r := NewRegistry(time.Minute)
	v := r.Open()
	r.Close(v.ID)
	assert.Equal(t, 0, r.Len())
}

func TestHoldKeepsViewFromSweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(10 * time.Minute)
	r.now = func() time.Time { return now }

	v := r.Open()
	release, err := r.Hold(v.ID)
	require.NoError(t, err)

	now = now.Add(11 * time.Minute)
	assert.Equal(t, 0, r.Sweep())
	require.NoError(t, r.With(v.ID, func(v *View) {
		v.Cart.AddItem("Tiramisu", decimal.RequireFromString("6.50"))
	}))

	release()
	release()
	now = now.Add(5 * time.Minute)
	assert.Equal(t, 0, r.Sweep())

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, r.Sweep())
	assert.True(t, errors.Is(r.With(v.ID, func(*View) {}), ErrViewNotFound))
}

func TestHoldUnknownView(t *testing.T) {
	r := NewRegistry(time.Minute)
	_, err := r.Hold("inconnue")
	assert.True(t, errors.Is(err, ErrViewNotFound))
}
