package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

func TestLocation_Code(t *testing.T) {
	l := &entity.Location{Zone: "a", Aisle: 3, Shelf: 2, Level: 1, Capacity: 50, Occupied: 60}
	assert.Equal(t, "A-03-02-1", l.Code())
	assert.Zero(t, l.Available(), "la capacidad libre nunca es negativa")
}

func TestParseLocationCode(t *testing.T) {
	zone, aisle, shelf, level, err := entity.ParseLocationCode("B-12-04-3")
	require.NoError(t, err)
	assert.Equal(t, "B", zone)
	assert.Equal(t, 12, aisle)
	assert.Equal(t, 4, shelf)
	assert.Equal(t, 3, level)

	for _, bad := range []string{"", "B-12-04", "-01-02-3", "B-xx-04-3"} {
		_, _, _, _, err := entity.ParseLocationCode(bad)
		assert.Error(t, err, "código %q", bad)
	}
}
