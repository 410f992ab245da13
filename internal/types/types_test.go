package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute_BaseAndItemID(t *testing.T) {
	tests := []struct {
		route    Route
		wantBase Route
		wantItem string
	}{
		{RouteStudio, RouteStudio, ""},
		{RouteLibrary, RouteLibrary, ""},
		{ItemRoute("ep-42"), RouteLibrary, "ep-42"},
		{RouteSettings, RouteSettings, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.route), func(t *testing.T) {
			assert.Equal(t, tt.wantBase, tt.route.Base())
			assert.Equal(t, tt.wantItem, tt.route.ItemID())
		})
	}
}

func TestStatusMsgHelpers(t *testing.T) {
	assert.Equal(t, MessageTypeInfo, InfoMsg("x").Type)
	assert.Equal(t, MessageTypeSuccess, SuccessMsg("x").Type)
	assert.Equal(t, MessageTypeError, ErrorStatusMsg("x").Type)
	assert.Equal(t, "boom", ErrorStatusMsg("boom").Message)
}
