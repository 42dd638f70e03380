// Package service runs the dashboard: every change to workspaces and
// widgets, user driven or tick driven, goes through one ordered path that
// ends in a write of the layout.
package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"classboard/internal/classboard/adapter"
	"classboard/internal/classboard/catalog"
	"classboard/internal/classboard/factory"
	"classboard/internal/classboard/model"
	"classboard/internal/classboard/repository"
	"classboard/internal/classboard/timer"
	"classboard/internal/classboard/util"
	"classboard/internal/classboard/workspace"
)

var (
	ErrUnsupportedAction = errors.New("action not supported by this widget")
	ErrWidgetInactive    = errors.New("widget is minimized")
)

type ClassboardService interface {
	WidgetTypes() []model.WidgetTypeDefinition

	ListWorkspaces() model.WorkspaceListResponse
	CreateWorkspace(ctx context.Context, req model.CreateWorkspaceReq) (model.Workspace, error)
	RenameWorkspace(ctx context.Context, req model.RenameWorkspaceReq) (model.Workspace, error)
	DeleteWorkspace(ctx context.Context, id string) error
	SelectWorkspace(ctx context.Context, req model.SelectWorkspaceReq) (model.Workspace, error)

	ListWidgets() []model.WidgetInstance
	AddWidget(ctx context.Context, req model.AddWidgetReq) (model.WidgetInstance, error)
	MoveWidget(ctx context.Context, req model.MoveWidgetReq) (model.WidgetInstance, error)
	MinimizeWidget(ctx context.Context, req model.MinimizeWidgetReq) (model.WidgetInstance, error)
	RenameWidget(ctx context.Context, req model.RenameWidgetReq) (model.WidgetInstance, error)
	UpdateWidgetConfig(ctx context.Context, id string, partial map[string]any) (model.WidgetInstance, error)
	RemoveWidget(ctx context.Context, id string) error
	WidgetState(id string) (WidgetState, error)
	PerformAction(ctx context.Context, req model.WidgetActionReq) (WidgetState, error)
}

type Options struct {
	TickInterval      time.Duration
	StopwatchInterval time.Duration
	// Scheduler defaults to a TickerScheduler.
	Scheduler  timer.Scheduler
	Player     adapter.AudioPlayer
	Microphone adapter.Microphone
	Rand       *rand.Rand
	// WidgetIDs and WorkspaceIDs replace the uuid generators.
	WidgetIDs    func() string
	WorkspaceIDs func() string
}

type Service struct {
	mu sync.Mutex

	catalog    *catalog.Catalog
	factory    *factory.Factory
	layout     *repository.Layout
	workspaces *workspace.Collection
	runtimes   map[string]*runtime
	tickTokens map[string]uint64
	tickSeq    uint64

	sched      timer.Scheduler
	player     adapter.AudioPlayer
	mic        adapter.Microphone
	rng        *rand.Rand
	tick       time.Duration
	swTick     time.Duration
	logger     *slog.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	closedOnce sync.Once
}

var _ ClassboardService = (*Service)(nil)

// NewService loads the persisted layout and mounts the widgets of the
// current workspace.
func NewService(ctx context.Context, cat *catalog.Catalog, layout *repository.Layout, opts Options) *Service {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.StopwatchInterval <= 0 {
		opts.StopwatchInterval = 10 * time.Millisecond
	}
	if opts.Player == nil {
		opts.Player = adapter.NewLogPlayer()
	}
	if opts.Microphone == nil {
		opts.Microphone = adapter.NoMicrophone{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	if opts.Scheduler == nil {
		opts.Scheduler = timer.NewTickerScheduler(runCtx)
	}

	var factoryOpts []factory.Option
	if opts.WidgetIDs != nil {
		factoryOpts = append(factoryOpts, factory.WithIDGenerator(opts.WidgetIDs))
	}
	var collectionOpts []workspace.Option
	if opts.WorkspaceIDs != nil {
		collectionOpts = append(collectionOpts, workspace.WithIDGenerator(opts.WorkspaceIDs))
	}

	stored := layout.Load(ctx)
	s := &Service{
		catalog:    cat,
		factory:    factory.New(cat, factoryOpts...),
		layout:     layout,
		workspaces: workspace.NewCollection(stored.Workspaces, stored.CurrentWorkspaceID, collectionOpts...),
		runtimes:   make(map[string]*runtime),
		tickTokens: make(map[string]uint64),
		sched:      opts.Scheduler,
		player:     opts.Player,
		mic:        opts.Microphone,
		rng:        opts.Rand,
		tick:       opts.TickInterval,
		swTick:     opts.StopwatchInterval,
		logger:     util.GetLogger(),
		ctx:        runCtx,
		cancel:     cancel,
	}

	s.mu.Lock()
	s.mountCurrent()
	s.mu.Unlock()
	return s
}

// Close tears down every runtime and waits for tick goroutines to exit.
func (s *Service) Close() {
	s.closedOnce.Do(func() {
		s.mu.Lock()
		s.unmountAll()
		s.mu.Unlock()

		// Stop waits for callbacks, which take s.mu.
		s.sched.Stop()
		s.cancel()
	})
}

func (s *Service) WidgetTypes() []model.WidgetTypeDefinition {
	return s.catalog.List()
}

// commit writes the layout. A failed write is logged and the in-memory
// state stays authoritative.
func (s *Service) commit() {
	if err := s.layout.Save(s.ctx, s.workspaces.Snapshot()); err != nil {
		s.logger.Warn("Failed to persist layout", "error", err)
	}
}

func (s *Service) play(sound string) {
	if sound == "" {
		return
	}
	if err := s.player.Play(s.ctx, sound); err != nil {
		s.logger.Warn("Failed to play sound", "sound", sound, "error", err)
	}
}
