package workspace

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"classboard/internal/classboard/model"

	"github.com/google/uuid"
)

// Collection is the non-empty ordered list of workspaces plus the id of the
// selected one. It is not safe for concurrent use.
type Collection struct {
	workspaces []model.Workspace
	currentID  string
	// retired holds ids of removed widgets. They are never admitted again.
	retired map[string]struct{}
	newID   func() string
}

type Option func(*Collection)

// WithIDGenerator replaces the uuid generator used for new workspaces.
func WithIDGenerator(fn func() string) Option {
	return func(c *Collection) {
		c.newID = fn
	}
}

// NewCollection takes ownership of a copy of workspaces. An empty list is
// replaced by the default workspace and a dangling currentID falls back to
// the first workspace.
func NewCollection(workspaces []model.Workspace, currentID string, opts ...Option) *Collection {
	c := &Collection{retired: make(map[string]struct{}), newID: uuid.NewString}
	for _, opt := range opts {
		opt(c)
	}
	if len(workspaces) == 0 {
		workspaces = model.DefaultWorkspaces()
	}
	c.workspaces = make([]model.Workspace, len(workspaces))
	for i, ws := range workspaces {
		c.workspaces[i] = ws.Clone()
	}
	c.currentID = currentID
	if c.find(currentID) < 0 {
		c.currentID = c.workspaces[0].ID
	}
	return c
}

func (c *Collection) Len() int { return len(c.workspaces) }

func (c *Collection) CurrentID() string { return c.currentID }

// Current returns a copy of the selected workspace.
func (c *Collection) Current() model.Workspace {
	i := c.find(c.currentID)
	if i < 0 {
		i = 0
	}
	return c.workspaces[i].Clone()
}

// Get returns a copy of workspace id.
func (c *Collection) Get(id string) (model.Workspace, bool) {
	i := c.find(id)
	if i < 0 {
		return model.Workspace{}, false
	}
	return c.workspaces[i].Clone(), true
}

// Workspaces returns a deep copy of all workspaces in order.
func (c *Collection) Workspaces() []model.Workspace {
	out := make([]model.Workspace, len(c.workspaces))
	for i, ws := range c.workspaces {
		out[i] = ws.Clone()
	}
	return out
}

// Snapshot is the persistable form of the collection.
func (c *Collection) Snapshot() model.Layout {
	return model.Layout{Workspaces: c.Workspaces(), CurrentWorkspaceID: c.currentID}
}

// Create appends a new empty workspace and selects it. A blank name gets
// "Workspace N".
func (c *Collection) Create(name string) (model.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Workspace %d", len(c.workspaces)+1)
	}
	if utf8.RuneCountInString(name) > model.MaxWorkspaceName {
		return model.Workspace{}, fmt.Errorf("%w: longer than %d characters", ErrInvalidName, model.MaxWorkspaceName)
	}
	ws := model.Workspace{ID: c.newID(), Name: name, Widgets: []model.WidgetInstance{}}
	c.workspaces = append(c.workspaces, ws)
	c.currentID = ws.ID
	return ws.Clone(), nil
}

func (c *Collection) Rename(id, name string) error {
	i := c.find(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrWorkspaceNotFound, id)
	}
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > model.MaxWorkspaceName {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	c.workspaces[i].Name = name
	return nil
}

// Delete removes workspace id. The last workspace cannot be deleted. When
// the selected workspace goes away the first remaining one is selected.
func (c *Collection) Delete(id string) error {
	i := c.find(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrWorkspaceNotFound, id)
	}
	if len(c.workspaces) <= 1 {
		return ErrLastWorkspace
	}
	for _, w := range c.workspaces[i].Widgets {
		c.retired[w.ID] = struct{}{}
	}
	workspaces := make([]model.Workspace, 0, len(c.workspaces)-1)
	workspaces = append(workspaces, c.workspaces[:i]...)
	c.workspaces = append(workspaces, c.workspaces[i+1:]...)
	if c.currentID == id {
		c.currentID = c.workspaces[0].ID
	}
	return nil
}

func (c *Collection) Select(id string) error {
	if c.find(id) < 0 {
		return fmt.Errorf("%w: %s", ErrWorkspaceNotFound, id)
	}
	c.currentID = id
	return nil
}

// AddWidget adds w to workspace wsID. Ids already used anywhere in the
// collection, or used by a removed widget, are rejected.
func (c *Collection) AddWidget(wsID string, w model.WidgetInstance) error {
	i := c.find(wsID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrWorkspaceNotFound, wsID)
	}
	if _, gone := c.retired[w.ID]; gone {
		return fmt.Errorf("%w: %s", ErrDuplicateID, w.ID)
	}
	if _, _, ok := c.FindWidget(w.ID); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, w.ID)
	}
	return AddWidget(&c.workspaces[i], w)
}

func (c *Collection) UpdateWidget(wsID, id string, patch model.WidgetPatch) error {
	i := c.find(wsID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrWorkspaceNotFound, wsID)
	}
	return UpdateWidget(&c.workspaces[i], id, patch)
}

// RemoveWidget is idempotent: removing an absent widget is not an error.
func (c *Collection) RemoveWidget(wsID, id string) error {
	i := c.find(wsID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrWorkspaceNotFound, wsID)
	}
	if RemoveWidget(&c.workspaces[i], id) {
		c.retired[id] = struct{}{}
	}
	return nil
}

// FindWidget searches every workspace for widget id.
func (c *Collection) FindWidget(id string) (string, model.WidgetInstance, bool) {
	for i := range c.workspaces {
		if w, ok := FindWidget(&c.workspaces[i], id); ok {
			return c.workspaces[i].ID, w, true
		}
	}
	return "", model.WidgetInstance{}, false
}

func (c *Collection) find(id string) int {
	for i := range c.workspaces {
		if c.workspaces[i].ID == id {
			return i
		}
	}
	return -1
}
