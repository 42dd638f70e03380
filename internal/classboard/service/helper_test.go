package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"classboard/internal/classboard/adapter"
	"classboard/internal/classboard/catalog"
	"classboard/internal/classboard/model"
	"classboard/internal/classboard/repository"
	"classboard/internal/classboard/timer"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	timeout = time.Second
	tick    = time.Millisecond
)

type MockPlayer struct {
	mock.Mock
}

func (m *MockPlayer) Play(ctx context.Context, sound string) error {
	args := m.Called(ctx, sound)
	return args.Error(0)
}

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
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockStore) Close() error {
	return m.Called().Error(0)
}

// recordingScheduler keeps every callback ever registered so tests can
// run one after its registration was replaced.
type recordingScheduler struct {
	*timer.ManualScheduler
	mu        sync.Mutex
	callbacks map[string][]func()
}

func (r *recordingScheduler) Schedule(id string, every time.Duration, fn func()) {
	r.mu.Lock()
	r.callbacks[id] = append(r.callbacks[id], fn)
	r.mu.Unlock()
	r.ManualScheduler.Schedule(id, every, fn)
}

func (r *recordingScheduler) registered(id string) []func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]func(){}, r.callbacks[id]...)
}

type fixture struct {
	svc    *Service
	sched  *timer.ManualScheduler
	rec    *recordingScheduler
	player *MockPlayer
	store  repository.KVStore
}

type fixtureOption func(*Options)

func withMicrophone(mic adapter.Microphone) fixtureOption {
	return func(o *Options) { o.Microphone = mic }
}

func sequence(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newFixture(t *testing.T, store repository.KVStore, opts ...fixtureOption) *fixture {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)

	f := &fixture{
		sched:  timer.NewManualScheduler(),
		player: new(MockPlayer),
		store:  store,
	}
	f.rec = &recordingScheduler{ManualScheduler: f.sched, callbacks: make(map[string][]func())}
	o := Options{
		Scheduler:    f.rec,
		Player:       f.player,
		Rand:         rand.New(rand.NewSource(7)),
		WidgetIDs:    sequence("widget"),
		WorkspaceIDs: sequence("ws"),
	}
	for _, opt := range opts {
		opt(&o)
	}
	f.svc = NewService(context.Background(), cat, repository.NewLayout(store, cat), o)
	t.Cleanup(f.svc.Close)
	return f
}

func (f *fixture) add(t *testing.T, widgetType string) model.WidgetInstance {
	t.Helper()
	w, err := f.svc.AddWidget(context.Background(), model.AddWidgetReq{Type: widgetType})
	require.NoError(t, err)
	return w
}

func (f *fixture) act(id, action string, mutate ...func(*model.WidgetActionReq)) (WidgetState, error) {
	req := model.WidgetActionReq{ID: id, Action: action}
	for _, m := range mutate {
		m(&req)
	}
	return f.svc.PerformAction(context.Background(), req)
}

func (f *fixture) configure(t *testing.T, id string, partial map[string]any) {
	t.Helper()
	_, err := f.svc.UpdateWidgetConfig(context.Background(), id, partial)
	require.NoError(t, err)
}

func (f *fixture) state(t *testing.T, id string) WidgetState {
	t.Helper()
	st, err := f.svc.WidgetState(id)
	require.NoError(t, err)
	return st
}
