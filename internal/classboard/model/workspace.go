package model

// Workspace is a named, ordered set of widgets. Widget order is z-order.
type Workspace struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Widgets []WidgetInstance `json:"widgets"`
}

// Clone returns a deep copy of w.
func (w Workspace) Clone() Workspace {
	widgets := make([]WidgetInstance, len(w.Widgets))
	for i, widget := range w.Widgets {
		widgets[i] = widget.Clone()
	}
	w.Widgets = widgets
	return w
}

// Layout is everything that gets persisted.
type Layout struct {
	Workspaces         []Workspace `json:"workspaces"`
	CurrentWorkspaceID string      `json:"currentWorkspaceId"`
}

// Persisted keys
const (
	KeyWorkspaces         = "workspaces"
	KeyCurrentWorkspaceID = "currentWorkspaceId"
)

const (
	DefaultWorkspaceID   = "default"
	DefaultWorkspaceName = "Default Workspace"
	MaxWorkspaceName     = 30
)

// DefaultWorkspaces is the layout used when nothing usable is stored.
func DefaultWorkspaces() []Workspace {
	return []Workspace{{ID: DefaultWorkspaceID, Name: DefaultWorkspaceName, Widgets: []WidgetInstance{}}}
}
