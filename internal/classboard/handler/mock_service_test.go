package handler_test

import (
	"context"

	"classboard/internal/classboard/model"
	"classboard/internal/classboard/service"

	"github.com/stretchr/testify/mock"
)

type MockClassboardService struct {
	mock.Mock
}

var _ service.ClassboardService = (*MockClassboardService)(nil)

func (m *MockClassboardService) WidgetTypes() []model.WidgetTypeDefinition {
	args := m.Called()
	return args.Get(0).([]model.WidgetTypeDefinition)
}

func (m *MockClassboardService) ListWorkspaces() model.WorkspaceListResponse {
	args := m.Called()
	return args.Get(0).(model.WorkspaceListResponse)
}

func (m *MockClassboardService) CreateWorkspace(ctx context.Context, req model.CreateWorkspaceReq) (model.Workspace, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Workspace), args.Error(1)
}

func (m *MockClassboardService) RenameWorkspace(ctx context.Context, req model.RenameWorkspaceReq) (model.Workspace, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Workspace), args.Error(1)
}

func (m *MockClassboardService) DeleteWorkspace(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClassboardService) SelectWorkspace(ctx context.Context, req model.SelectWorkspaceReq) (model.Workspace, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Workspace), args.Error(1)
}

func (m *MockClassboardService) ListWidgets() []model.WidgetInstance {
	args := m.Called()
	return args.Get(0).([]model.WidgetInstance)
}

func (m *MockClassboardService) AddWidget(ctx context.Context, req model.AddWidgetReq) (model.WidgetInstance, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.WidgetInstance), args.Error(1)
}

func (m *MockClassboardService) MoveWidget(ctx context.Context, req model.MoveWidgetReq) (model.WidgetInstance, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.WidgetInstance), args.Error(1)
}

func (m *MockClassboardService) MinimizeWidget(ctx context.Context, req model.MinimizeWidgetReq) (model.WidgetInstance, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.WidgetInstance), args.Error(1)
}

func (m *MockClassboardService) RenameWidget(ctx context.Context, req model.RenameWidgetReq) (model.WidgetInstance, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.WidgetInstance), args.Error(1)
}

func (m *MockClassboardService) UpdateWidgetConfig(ctx context.Context, id string, partial map[string]any) (model.WidgetInstance, error) {
	args := m.Called(ctx, id, partial)
	return args.Get(0).(model.WidgetInstance), args.Error(1)
}

func (m *MockClassboardService) RemoveWidget(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClassboardService) WidgetState(id string) (service.WidgetState, error) {
	args := m.Called(id)
	return args.Get(0).(service.WidgetState), args.Error(1)
}

func (m *MockClassboardService) PerformAction(ctx context.Context, req model.WidgetActionReq) (service.WidgetState, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.WidgetState), args.Error(1)
}
