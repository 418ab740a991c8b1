package cart

import (
	"testing"

	"resto_web/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	snapshots []models.Snapshot
}

func (r *recordingSink) Render(s models.Snapshot) {
	r.snapshots = append(r.snapshots, s)
}

func (r *recordingSink) last() models.Snapshot {
	return r.snapshots[len(r.snapshots)-1]
}

type notices []string

func (n *notices) Notify(msg string) { *n = append(*n, msg) }

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddSameItemThreeTimes(t *testing.T) {
	sink := &recordingSink{}
	m := NewManager(sink)

	for i := 0; i < 3; i++ {
		m.AddItem("Pizza", price("9.99"))
	}

	require.Len(t, sink.snapshots, 3)
	snap := sink.last()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, "Pizza", snap.Lines[0].Name)
	assert.Equal(t, 3, snap.Lines[0].Quantity)
	assert.Equal(t, "29.97", snap.Lines[0].LineTotal)
	assert.Equal(t, "29.97", snap.GrandTotal)
}

func TestAddKeepsFirstPrice(t *testing.T) {
	m := NewManager()
	m.AddItem("Burger", price("5.00"))
	m.AddItem("Burger", price("7.50"))

	lines := m.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].UnitPrice.Equal(price("5.00")))
	assert.Equal(t, "10.00", m.Snapshot().GrandTotal)
}

func TestQuantityMatchesAddCount(t *testing.T) {
	m := NewManager()
	calls := []string{"Pasta", "Salad", "Pasta", "Soup", "Salad", "Pasta"}
	want := map[string]int{}
	for _, name := range calls {
		m.AddItem(name, price("3.10"))
		want[name]++
	}

	got := map[string]int{}
	for _, l := range m.Lines() {
		got[l.Name] += l.Quantity
	}
	assert.Equal(t, want, got)
}

func TestRenderKeepsFirstInsertionOrder(t *testing.T) {
	m := NewManager()
	m.AddItem("Tiramisu", price("6.00"))
	m.AddItem("Lasagna", price("12.00"))
	m.AddItem("Tiramisu", price("6.00"))
	m.AddItem("Espresso", price("2.00"))

	var names []string
	for _, l := range m.Snapshot().Lines {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"Tiramisu", "Lasagna", "Espresso"}, names)
}

func TestRemoveItem(t *testing.T) {
	sink := &recordingSink{}
	m := NewManager(sink)
	m.AddItem("Pizza", price("9.99"))
	m.AddItem("Cola", price("1.50"))
	m.AddItem("Cola", price("1.50"))

	before := sink.last()
	require.Len(t, before.Lines, 2)
	assert.Equal(t, "12.99", before.GrandTotal)

	m.RemoveItem("Cola")
	after := sink.last()
	assert.Len(t, after.Lines, 1)
	assert.Equal(t, "9.99", after.GrandTotal)

	m.RemoveItem("Cola")
	again := sink.last()
	assert.Equal(t, after, again)
	assert.Equal(t, 1, m.Len())
}

func TestReaddAfterRemoveGoesLast(t *testing.T) {
	m := NewManager()
	m.AddItem("A", price("1"))
	m.AddItem("B", price("1"))
	m.RemoveItem("A")
	m.AddItem("A", price("2"))

	lines := m.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "B", lines[0].Name)
	assert.Equal(t, "A", lines[1].Name)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.True(t, lines[1].UnitPrice.Equal(price("2")))
}

func TestClearConfirmed(t *testing.T) {
	sink := &recordingSink{}
	m := NewManager(sink)
	m.AddItem("Pizza", price("9.99"))

	var asked []string
	out := m.Clear(ConfirmFunc(func(p string) bool {
		asked = append(asked, p)
		return true
	}))

	assert.Equal(t, Cleared, out)
	assert.Equal(t, []string{MsgConfirmClear}, asked)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, sink.last().Lines)
	assert.Equal(t, "0.00", sink.last().GrandTotal)
}

func TestClearDeclinedLeavesEverything(t *testing.T) {
	sink := &recordingSink{}
	m := NewManager(sink)
	m.AddItem("Pizza", price("9.99"))
	m.AddItem("Wine", price("18.25"))
	rendered := len(sink.snapshots)
	before := m.Snapshot()

	out := m.Clear(Always(false))

	assert.Equal(t, Declined, out)
	assert.Equal(t, rendered, len(sink.snapshots))
	assert.Equal(t, before, m.Snapshot())
	assert.Equal(t, 2, m.Len())
}

func TestClearEmptyNotifies(t *testing.T) {
	sink := &recordingSink{}
	m := NewManager(sink)
	var got notices
	m.SetNotifier(&got)

	asked := false
	out := m.Clear(ConfirmFunc(func(string) bool {
		asked = true
		return true
	}))

	assert.Equal(t, AlreadyEmpty, out)
	assert.False(t, asked)
	assert.Equal(t, notices{MsgAlreadyEmpty}, got)
	assert.Empty(t, sink.snapshots)

	m.Clear(Always(true))
	assert.Len(t, got, 2)
}

func TestGrandTotalIndependentOfOrder(t *testing.T) {
	items := []struct {
		name  string
		price string
	}{
		{"Bruschetta", "4.35"},
		{"Risotto", "13.90"},
		{"Gelato", "3.33"},
	}

	forward := NewManager()
	for _, it := range items {
		forward.AddItem(it.name, price(it.price))
		forward.AddItem(it.name, price(it.price))
	}
	backward := NewManager()
	for i := len(items) - 1; i >= 0; i-- {
		backward.AddItem(items[i].name, price(items[i].price))
		backward.AddItem(items[i].name, price(items[i].price))
	}

	assert.Equal(t, "43.16", forward.Snapshot().GrandTotal)
	assert.Equal(t, forward.Snapshot().GrandTotal, backward.Snapshot().GrandTotal)
}

func TestAttachPushesCurrentStateAndDetach(t *testing.T) {
	m := NewManager()
	m.AddItem("Pizza", price("9.99"))

	sink := &recordingSink{}
	detach := m.Attach(sink)
	require.Len(t, sink.snapshots, 1)
	assert.Equal(t, "9.99", sink.last().GrandTotal)

	detach()
	m.AddItem("Pizza", price("9.99"))
	assert.Len(t, sink.snapshots, 1)
}

func TestClearOutcomeString(t *testing.T) {
	assert.Equal(t, "cleared", Cleared.String())
	assert.Equal(t, "already_empty", AlreadyEmpty.String())
	assert.Equal(t, "declined", Declined.String())
}
