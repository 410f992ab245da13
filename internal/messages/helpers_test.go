package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/onair/internal/types"
)

func TestStatusCmds(t *testing.T) {
	tests := []struct {
		name     string
		cmd      func(string, ...any) any
		wantType types.MessageType
	}{
		{"error", func(f string, a ...any) any { return ErrorCmd(f, a...)() }, types.MessageTypeError},
		{"success", func(f string, a ...any) any { return SuccessCmd(f, a...)() }, types.MessageTypeSuccess},
		{"info", func(f string, a ...any) any { return InfoCmd(f, a...)() }, types.MessageTypeInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := tt.cmd("copied %s", "link").(types.StatusMsg)
			require.True(t, ok)
			assert.Equal(t, tt.wantType, msg.Type)
			assert.Equal(t, "copied link", msg.Message)
		})
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("no such file")
	err := WrapError(base, "failed to read library %s", "/tmp/x.yaml")

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "failed to read library /tmp/x.yaml: no such file", err.Error())
}
