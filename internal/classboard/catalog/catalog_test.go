package catalog

import (
	"testing"

	"classboard/internal/classboard/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	defs := c.List()
	expected := []string{
		model.WidgetCountdown, model.WidgetTrafficLight, model.WidgetSoundMeter, model.WidgetLessonPhases,
		model.WidgetScoreboard, model.WidgetGroupMaker, model.WidgetDice, model.WidgetStopwatch,
		model.WidgetText, model.WidgetPoll,
	}
	require.Len(t, defs, len(expected))
	for i, typ := range expected {
		assert.Equal(t, typ, defs[i].Type)
		assert.NotEmpty(t, defs[i].Name)
		assert.NotEmpty(t, defs[i].DefaultConfig)
		assert.Positive(t, defs[i].DefaultSize.Width)
	}
}

func TestLookup(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	t.Run("known type", func(t *testing.T) {
		def, ok := c.Lookup(model.WidgetDice)
		require.True(t, ok)
		assert.Equal(t, "Dice", def.Name)
		assert.Equal(t, float64(6), def.DefaultConfig["sides"])
		assert.Equal(t, model.Size{Width: 200, Height: 200}, def.DefaultSize)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, ok := c.Lookup("visualTimer")
		assert.False(t, ok)
	})
}

func TestResultsDoNotAliasCatalog(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	def, _ := c.Lookup(model.WidgetLessonPhases)
	def.DefaultConfig["autoProgress"] = false
	phases := def.DefaultConfig["phases"].([]any)
	phases[0].(map[string]any)["name"] = "changed"

	again, _ := c.Lookup(model.WidgetLessonPhases)
	assert.Equal(t, true, again.DefaultConfig["autoProgress"])
	assert.Equal(t, "Introduction", again.DefaultConfig["phases"].([]any)[0].(map[string]any)["name"])

	list := c.List()
	list[0].DefaultConfig["minutes"] = float64(99)
	def, _ = c.Lookup(model.WidgetCountdown)
	assert.Equal(t, float64(5), def.DefaultConfig["minutes"])
}

func TestFromDefinitionsRejectsBadInput(t *testing.T) {
	t.Run("duplicate type", func(t *testing.T) {
		def := model.WidgetTypeDefinition{Type: model.WidgetStopwatch, Name: "Stopwatch", DefaultConfig: map[string]any{"laps": false}}
		_, err := FromDefinitions([]model.WidgetTypeDefinition{def, def})
		assert.Error(t, err)
	})

	t.Run("default out of range", func(t *testing.T) {
		def := model.WidgetTypeDefinition{Type: model.WidgetDice, Name: "Dice", DefaultConfig: map[string]any{"numberOfDice": 9, "sides": 6}}
		_, err := FromDefinitions([]model.WidgetTypeDefinition{def})
		assert.Error(t, err)
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := FromDefinitions([]model.WidgetTypeDefinition{{Name: "nameless"}})
		assert.Error(t, err)
	})
}
