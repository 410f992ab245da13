package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/onair/internal/types"
)

func TestGetTheme(t *testing.T) {
	for _, name := range AvailableThemes() {
		t.Run(name, func(t *testing.T) {
			theme := GetTheme(name)
			assert.Equal(t, name, theme.Name)
			assert.NotEmpty(t, theme.Primary.Dark)
		})
	}

	assert.Equal(t, "charm", GetTheme("unknown").Name)
}

func TestNextTheme_Wraps(t *testing.T) {
	names := AvailableThemes()
	for i, name := range names {
		want := names[(i+1)%len(names)]
		assert.Equal(t, want, NextTheme(name).Name)
	}
	assert.Equal(t, names[0], NextTheme("missing").Name)
}

func TestAvailableThemes_ReturnsCopy(t *testing.T) {
	names := AvailableThemes()
	names[0] = "changed"
	assert.Equal(t, "charm", AvailableThemes()[0])
}

func TestRenderMessage(t *testing.T) {
	theme := GetTheme("charm")

	assert.Equal(t, "", RenderMessage("", types.MessageTypeInfo, theme, 80))
	assert.Contains(t, RenderMessage("Recording started", types.MessageTypeSuccess, theme, 80), "Recording started")

	long := "a very long status message that will not fit in a narrow terminal at all"
	out := RenderMessage(long, types.MessageTypeError, theme, 30)
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, "at all")
}
