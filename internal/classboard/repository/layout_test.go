package repository

import (
	"context"
	"errors"
	"testing"

	"classboard/internal/classboard/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	var value []byte
	if v := args.Get(0); v != nil {
		value = v.([]byte)
	}
	return value, args.Bool(1), args.Error(2)
}

func (m *MockStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) Close() error {
	return m.Called().Error(0)
}

type staticDefs map[string]model.WidgetTypeDefinition

func (d staticDefs) Lookup(widgetType string) (model.WidgetTypeDefinition, bool) {
	def, ok := d[widgetType]
	return def, ok
}

var testDefs = staticDefs{
	model.WidgetDice: {
		Type:          model.WidgetDice,
		DefaultConfig: map[string]any{"numberOfDice": float64(1), "sides": float64(6)},
	},
}

func sampleLayout() model.Layout {
	return model.Layout{
		Workspaces: []model.Workspace{
			{ID: "a", Name: "Math", Widgets: []model.WidgetInstance{
				{ID: "w1", Type: model.WidgetDice, Name: "Dice", Position: model.Position{X: 50, Y: 50}, Size: model.Size{Width: 250, Height: 250},
					Config: map[string]any{"numberOfDice": float64(2), "sides": float64(20)}},
				{ID: "w2", Type: model.WidgetText, Name: "Text", Position: model.Position{X: 10.5, Y: 300}, Size: model.Size{Width: 300, Height: 200},
					Config: map[string]any{"text": "hello", "fontSize": float64(16), "alignment": "left"}, IsMinimized: true},
				{ID: "w3", Type: model.WidgetPoll, Name: "Poll", Position: model.Position{X: 0, Y: 0}, Size: model.Size{Width: 300, Height: 300},
					Config: map[string]any{"question": "q", "options": []any{"A", "B"}}},
			}},
			{ID: "b", Name: "Art", Widgets: []model.WidgetInstance{}},
		},
		CurrentWorkspaceID: "b",
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	for name, newStore := range map[string]func(t *testing.T) KVStore{
		"memory": func(t *testing.T) KVStore { return NewMemoryStore() },
		"sqlite": func(t *testing.T) KVStore {
			s, err := NewSQLiteStore(":memory:")
			require.NoError(t, err)
			return s
		},
	} {
		t.Run(name, func(t *testing.T) {
			store := newStore(t)
			defer store.Close()
			layout := NewLayout(store, testDefs)

			want := sampleLayout()
			require.NoError(t, layout.Save(context.Background(), want))

			got := layout.Load(context.Background())
			assert.Equal(t, want, got)
		})
	}
}

func TestLayoutLoadDefaults(t *testing.T) {
	got := NewLayout(NewMemoryStore(), nil).Load(context.Background())
	assert.Equal(t, model.DefaultWorkspaces(), got.Workspaces)
	assert.Equal(t, model.DefaultWorkspaceID, got.CurrentWorkspaceID)
}

func TestLayoutLoadCorrupt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, model.KeyWorkspaces, []byte(`{not json`)))
	require.NoError(t, store.Set(ctx, model.KeyCurrentWorkspaceID, []byte(`"default"`)))

	got := NewLayout(store, nil).Load(ctx)
	assert.Equal(t, model.DefaultWorkspaces(), got.Workspaces)
	assert.Equal(t, model.DefaultWorkspaceID, got.CurrentWorkspaceID)
}

func TestLayoutLoadCorruptCurrentKeepsWorkspaces(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	layout := NewLayout(store, nil)
	require.NoError(t, layout.Save(ctx, sampleLayout()))
	require.NoError(t, store.Set(ctx, model.KeyCurrentWorkspaceID, []byte(`42`)))

	got := layout.Load(ctx)
	assert.Len(t, got.Workspaces, 2)
	assert.Equal(t, "a", got.CurrentWorkspaceID, "falls back to the first workspace")
}

func TestLayoutLoadNormalizes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	raw := `[
		{"id":"a","name":"A","widgets":[
			{"id":"w1","type":"dice","config":{"sides":20}},
			{"id":"w1","type":"dice","config":{}},
			{"id":"w2","type":"dice","config":{"sides":7}}
		]},
		{"id":"a","name":"dup","widgets":[]},
		{"id":"","name":"blank"}
	]`
	require.NoError(t, store.Set(ctx, model.KeyWorkspaces, []byte(raw)))
	require.NoError(t, store.Set(ctx, model.KeyCurrentWorkspaceID, []byte(`"gone"`)))

	got := NewLayout(store, testDefs).Load(ctx)
	require.Len(t, got.Workspaces, 1)
	assert.Equal(t, "a", got.CurrentWorkspaceID)

	widgets := got.Workspaces[0].Widgets
	require.Len(t, widgets, 2)
	assert.Equal(t, map[string]any{"numberOfDice": float64(1), "sides": float64(20)}, widgets[0].Config, "missing keys filled from defaults")
	assert.Equal(t, map[string]any{"numberOfDice": float64(1), "sides": float64(6)}, widgets[1].Config, "invalid config replaced")
}

func TestLayoutLoadEmptyList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, model.KeyWorkspaces, []byte(`[]`)))

	got := NewLayout(store, nil).Load(ctx)
	assert.Equal(t, model.DefaultWorkspaces(), got.Workspaces)
}

func TestLayoutStoreFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")

	store := new(MockStore)
	store.On("Get", ctx, mock.Anything).Return(nil, false, boom)
	store.On("Set", ctx, model.KeyWorkspaces, mock.Anything).Return(boom)
	store.On("Set", ctx, model.KeyCurrentWorkspaceID, mock.Anything).Return(nil)

	layout := NewLayout(store, nil)

	got := layout.Load(ctx)
	assert.Equal(t, model.DefaultWorkspaces(), got.Workspaces)

	err := layout.Save(ctx, sampleLayout())
	assert.ErrorIs(t, err, boom)
	store.AssertNumberOfCalls(t, "Set", 2)
}
