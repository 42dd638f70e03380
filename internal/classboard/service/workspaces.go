package service

import (
	"context"

	"classboard/internal/classboard/model"
)

func (s *Service) ListWorkspaces() model.WorkspaceListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.workspaces.Snapshot()
	return model.WorkspaceListResponse{Workspaces: snap.Workspaces, CurrentWorkspaceID: snap.CurrentWorkspaceID}
}

// CreateWorkspace adds a workspace and switches to it.
func (s *Service) CreateWorkspace(ctx context.Context, req model.CreateWorkspaceReq) (model.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, err := s.workspaces.Create(req.Name)
	if err != nil {
		return model.Workspace{}, err
	}
	s.unmountAll()
	s.mountCurrent()
	s.logger.InfoContext(ctx, "Workspace created", "workspace_id", ws.ID, "name", ws.Name)
	s.commit()
	return ws, nil
}

func (s *Service) RenameWorkspace(ctx context.Context, req model.RenameWorkspaceReq) (model.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.workspaces.Rename(req.ID, req.Name); err != nil {
		return model.Workspace{}, err
	}
	s.commit()
	ws, _ := s.workspaces.Get(req.ID)
	return ws, nil
}

// DeleteWorkspace removes a workspace. Deleting the current one switches
// to the first remaining workspace.
func (s *Service) DeleteWorkspace(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasCurrent := id == s.workspaces.CurrentID()
	if wasCurrent && s.workspaces.Len() > 1 {
		s.unmountAll()
		defer s.mountCurrent()
	}
	if err := s.workspaces.Delete(id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Workspace deleted", "workspace_id", id)
	s.commit()
	return nil
}

func (s *Service) SelectWorkspace(ctx context.Context, req model.SelectWorkspaceReq) (model.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ID == s.workspaces.CurrentID() {
		return s.workspaces.Current(), nil
	}
	if _, ok := s.workspaces.Get(req.ID); !ok {
		return model.Workspace{}, s.workspaces.Select(req.ID)
	}

	s.unmountAll()
	_ = s.workspaces.Select(req.ID)
	s.mountCurrent()
	s.commit()
	return s.workspaces.Current(), nil
}
