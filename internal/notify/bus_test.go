package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBus(limit int, ttl time.Duration) (*Bus, *fakeClock) {
	clk := &fakeClock{t: time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)}
	return NewBus(limit, ttl, WithClock(clk.now)), clk
}

func TestPublish_ActiveNewestFirst(t *testing.T) {
	b, _ := newTestBus(3, time.Second)
	b.Publish("Invoice Created", "INV-2024-106 has been created")
	b.Publish("Payment Recorded", "$60 recorded for INV-2024-106")

	active := b.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "Payment Recorded", active[0].Title)
	assert.Equal(t, "Invoice Created", active[1].Title)
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestPublish_BoundedDropsOldest(t *testing.T) {
	b, _ := newTestBus(2, time.Minute)
	b.Publish("one", "")
	b.Publish("two", "")
	b.Publish("three", "")

	active := b.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "three", active[0].Title)
	assert.Equal(t, "two", active[1].Title)
	assert.Equal(t, 3, b.Published())
}

func TestActive_PrunesExpired(t *testing.T) {
	b, clk := newTestBus(3, 5*time.Second)
	b.Publish("first", "")
	clk.advance(3 * time.Second)
	b.Publish("second", "")

	clk.advance(2 * time.Second)
	active := b.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Title)

	clk.advance(3 * time.Second)
	assert.Empty(t, b.Active())
}

func TestDismissAndLatest(t *testing.T) {
	b, _ := newTestBus(3, time.Minute)
	_, ok := b.Latest()
	assert.False(t, ok)

	n := b.Publish("Delete Job", "Are you sure you want to delete Warehouse Expansion?", Destructive())
	assert.Equal(t, VariantDestructive, n.Variant)

	latest, ok := b.Latest()
	require.True(t, ok)
	assert.Equal(t, n.ID, latest.ID)

	assert.True(t, b.Dismiss(n.ID))
	assert.False(t, b.Dismiss(n.ID))
	assert.Empty(t, b.Active())
}

func TestLatest_SkipsExpired(t *testing.T) {
	b, clk := newTestBus(3, 5*time.Second)
	old := b.Publish("Lead Added", "Dana Park has been added to your pipeline")
	clk.advance(3 * time.Second)
	fresh := b.Publish("Contact Lead", "Initiating contact with Dana Park")

	latest, ok := b.Latest()
	require.True(t, ok)
	assert.Equal(t, fresh.ID, latest.ID)

	require.True(t, b.Dismiss(fresh.ID))
	latest, ok = b.Latest()
	require.True(t, ok)
	assert.Equal(t, old.ID, latest.ID)

	clk.advance(3 * time.Second)
	_, ok = b.Latest()
	assert.False(t, ok, "old has outlived its ttl")
}

func TestNewBus_Defaults(t *testing.T) {
	b := NewBus(0, 0)
	assert.Equal(t, DefaultLimit, b.limit)
	assert.Equal(t, DefaultTTL, b.ttl)
}
