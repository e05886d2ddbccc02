package main

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	p, err := parseCoordinate("40.6401, 22.9444")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{22.9444, 40.6401}, p)

	for _, bad := range []string{"", "40.6", "north,22", "91,0", "0,181"} {
		_, err := parseCoordinate(bad)
		assert.Error(t, err, bad)
	}
}

func TestRoutePoints(t *testing.T) {
	from := orb.Point{22.90, 40.60}
	to := orb.Point{22.94, 40.64}

	route := routePoints(from, to, 4)

	require.Len(t, route, 4)
	assert.Equal(t, to, route[3])

	total := geo.Distance(from, to)
	prev := from
	for _, p := range route {
		assert.InDelta(t, total/4, geo.Distance(prev, p), total*0.01)
		prev = p
	}

	assert.Equal(t, []orb.Point{to}, routePoints(from, to, 0))
}
