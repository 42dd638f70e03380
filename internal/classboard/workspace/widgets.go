// Package workspace owns the workspace aggregate: the widgets of one
// workspace and the ordered collection of all workspaces.
package workspace

import (
	"errors"
	"fmt"

	"classboard/internal/classboard/model"
)

var (
	ErrDuplicateID       = errors.New("duplicate widget id")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrWidgetNotFound    = errors.New("widget not found")
	ErrLastWorkspace     = errors.New("cannot delete the last workspace")
	ErrInvalidName       = errors.New("invalid workspace name")
)

// AddWidget appends w to ws. The stored widget is a private copy.
func AddWidget(ws *model.Workspace, w model.WidgetInstance) error {
	if indexOf(ws, w.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, w.ID)
	}
	ws.Widgets = append(ws.Widgets, w.Clone())
	return nil
}

// UpdateWidget replaces the top-level fields set in patch. A missing id is
// reported but leaves ws untouched, so a removed widget is never revived.
func UpdateWidget(ws *model.Workspace, id string, patch model.WidgetPatch) error {
	i := indexOf(ws, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrWidgetNotFound, id)
	}
	w := ws.Widgets[i].Clone()
	if patch.Name != nil {
		w.Name = *patch.Name
	}
	if patch.Position != nil {
		w.Position = *patch.Position
	}
	if patch.Size != nil {
		w.Size = *patch.Size
	}
	if patch.Config != nil {
		w.Config = model.CloneConfig(patch.Config)
	}
	if patch.IsMinimized != nil {
		w.IsMinimized = *patch.IsMinimized
	}

	widgets := make([]model.WidgetInstance, len(ws.Widgets))
	copy(widgets, ws.Widgets)
	widgets[i] = w
	ws.Widgets = widgets
	return nil
}

// RemoveWidget drops id from ws. Reports whether anything was removed.
func RemoveWidget(ws *model.Workspace, id string) bool {
	i := indexOf(ws, id)
	if i < 0 {
		return false
	}
	widgets := make([]model.WidgetInstance, 0, len(ws.Widgets)-1)
	widgets = append(widgets, ws.Widgets[:i]...)
	ws.Widgets = append(widgets, ws.Widgets[i+1:]...)
	return true
}

// FindWidget returns a copy of widget id.
func FindWidget(ws *model.Workspace, id string) (model.WidgetInstance, bool) {
	i := indexOf(ws, id)
	if i < 0 {
		return model.WidgetInstance{}, false
	}
	return ws.Widgets[i].Clone(), true
}

func indexOf(ws *model.Workspace, id string) int {
	for i := range ws.Widgets {
		if ws.Widgets[i].ID == id {
			return i
		}
	}
	return -1
}
