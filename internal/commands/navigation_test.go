package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/onair/internal/types"
)

func TestRouteTitle(t *testing.T) {
	tests := []struct {
		route types.Route
		want  string
	}{
		{types.RouteStudio, "Studio"},
		{types.RouteMeeting, "Meeting Room"},
		{types.ItemRoute("ep-1"), "Library"},
		{types.Route("elsewhere"), "elsewhere"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RouteTitle(tt.route))
	}
}

func TestGroupString(t *testing.T) {
	assert.Equal(t, "Actions", GroupActions.String())
	assert.Equal(t, "Navigation", GroupNavigation.String())
	assert.Equal(t, "Recent", GroupRecentItems.String())
	assert.Equal(t, "System", GroupSystem.String())
	assert.Equal(t, "Other", Group(42).String())
}
