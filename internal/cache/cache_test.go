package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JustJay7/jagriti-case-api/internal/jagriti"
)

func TestDisabledCacheNeverHits(t *testing.T) {
	c := New(0)

	c.Set(StatesKey(), []jagriti.Commission{{CommissionID: 1, CommissionNameEn: "KARNATAKA"}})

	_, found := c.Get(StatesKey())
	assert.False(t, found)
}

func TestEnabledCacheStoresSnapshots(t *testing.T) {
	c := New(time.Minute)

	entries := []jagriti.Commission{
		{CommissionID: 11290000, CommissionNameEn: "KARNATAKA", ActiveStatus: true},
	}
	c.Set(StatesKey(), entries)

	got, found := c.Get(StatesKey())
	assert.True(t, found)
	assert.Equal(t, entries, got)

	_, found = c.Get(DistrictsKey(11290000))
	assert.False(t, found)
}

func TestDistrictKeysAreScopedByState(t *testing.T) {
	c := New(time.Minute)

	c.Set(DistrictsKey(11290000), []jagriti.Commission{{CommissionID: 15290525}})
	c.Set(DistrictsKey(11270000), []jagriti.Commission{{CommissionID: 15270001}})

	karnataka, found := c.Get(DistrictsKey(11290000))
	assert.True(t, found)
	assert.Equal(t, 15290525, karnataka[0].CommissionID)

	maharashtra, found := c.Get(DistrictsKey(11270000))
	assert.True(t, found)
	assert.Equal(t, 15270001, maharashtra[0].CommissionID)
}
