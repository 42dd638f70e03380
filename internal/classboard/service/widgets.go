package service

import (
	"context"
	"fmt"

	"classboard/internal/classboard/metrics"
	"classboard/internal/classboard/model"
	"classboard/internal/classboard/widgetconfig"
	"classboard/internal/classboard/workspace"
)

func (s *Service) ListWidgets() []model.WidgetInstance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workspaces.Current().Widgets
}

// AddWidget creates a widget of the requested type on the current workspace.
func (s *Service) AddWidget(ctx context.Context, req model.AddWidgetReq) (model.WidgetInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.factory.Create(req.Type)
	if err != nil {
		return model.WidgetInstance{}, err
	}
	if err := s.workspaces.AddWidget(s.workspaces.CurrentID(), w); err != nil {
		return model.WidgetInstance{}, err
	}
	metrics.RecordWidgetCreated(w.Type)
	s.logger.InfoContext(ctx, "Widget added", "widget_id", w.ID, "type", w.Type)

	s.mount(w)
	s.commit()
	return w, nil
}

func (s *Service) MoveWidget(ctx context.Context, req model.MoveWidgetReq) (model.WidgetInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := model.Position{X: req.X, Y: req.Y}
	return s.patchWidget(req.ID, model.WidgetPatch{Position: &pos})
}

// MinimizeWidget collapses or restores a widget. A minimized widget has no
// live body: its timers stop and it mounts again when restored.
func (s *Service) MinimizeWidget(ctx context.Context, req model.MinimizeWidgetReq) (model.WidgetInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	minimized := req.Minimized
	w, err := s.patchWidget(req.ID, model.WidgetPatch{IsMinimized: &minimized})
	if err != nil {
		return w, err
	}
	if minimized {
		s.unmount(w.ID)
	} else if _, live := s.runtimes[w.ID]; !live {
		s.mount(w)
	}
	return w, nil
}

func (s *Service) RenameWidget(ctx context.Context, req model.RenameWidgetReq) (model.WidgetInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := req.Name
	return s.patchWidget(req.ID, model.WidgetPatch{Name: &name})
}

// UpdateWidgetConfig merges partial into the widget's configuration.
func (s *Service) UpdateWidgetConfig(ctx context.Context, id string, partial map[string]any) (model.WidgetInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.updateConfig(id, partial); err != nil {
		return model.WidgetInstance{}, err
	}
	w, _ := s.currentWidget(id)
	return w, nil
}

// RemoveWidget is idempotent. The widget's timers are cancelled before it
// leaves the workspace.
func (s *Service) RemoveWidget(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.currentWidget(id); !ok {
		return nil
	}
	s.unmount(id)
	if err := s.workspaces.RemoveWidget(s.workspaces.CurrentID(), id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Widget removed", "widget_id", id)
	s.commit()
	return nil
}

func (s *Service) currentWidget(id string) (model.WidgetInstance, bool) {
	ws := s.workspaces.Current()
	return workspace.FindWidget(&ws, id)
}

func (s *Service) patchWidget(id string, patch model.WidgetPatch) (model.WidgetInstance, error) {
	if err := s.workspaces.UpdateWidget(s.workspaces.CurrentID(), id, patch); err != nil {
		return model.WidgetInstance{}, err
	}
	s.commit()
	w, _ := s.currentWidget(id)
	return w, nil
}

// updater is the merge handle given to a widget's body.
func (s *Service) updater(id string) widgetconfig.Updater {
	return func(partial map[string]any) error {
		return s.updateConfig(id, partial)
	}
}

// updateConfig is the single path through which configuration changes.
// An invalid result is rejected and the previous configuration stays.
func (s *Service) updateConfig(id string, partial map[string]any) error {
	w, ok := s.currentWidget(id)
	if !ok {
		return fmt.Errorf("%w: %s", workspace.ErrWidgetNotFound, id)
	}
	merged, err := widgetconfig.Apply(w.Type, w.Config, partial)
	if err != nil {
		return err
	}
	if err := s.workspaces.UpdateWidget(s.workspaces.CurrentID(), id, model.WidgetPatch{Config: merged}); err != nil {
		return err
	}
	if rt, live := s.runtimes[id]; live {
		s.reconfigure(id, rt, merged)
	}
	s.commit()
	return nil
}
