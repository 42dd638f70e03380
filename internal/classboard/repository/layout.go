package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"classboard/internal/classboard/metrics"
	"classboard/internal/classboard/model"
	"classboard/internal/classboard/util"
	"classboard/internal/classboard/widgetconfig"
)

// Definitions resolves widget types to their catalog definitions.
type Definitions interface {
	Lookup(widgetType string) (model.WidgetTypeDefinition, bool)
}

// Layout reads and writes the two persisted records: the workspace list
// and the id of the selected workspace.
type Layout struct {
	store  KVStore
	defs   Definitions
	logger *slog.Logger
}

// NewLayout wraps store. defs may be nil, in which case persisted widget
// configurations are loaded as they are.
func NewLayout(store KVStore, defs Definitions) *Layout {
	return &Layout{store: store, defs: defs, logger: util.GetLogger()}
}

// Load never fails. Each key that is missing, unreadable or corrupt falls
// back to its default and the result is normalized so that the workspace
// list is non-empty and the current id references one of its entries.
func (l *Layout) Load(ctx context.Context) model.Layout {
	workspaces := model.DefaultWorkspaces()
	if err := l.read(ctx, model.KeyWorkspaces, &workspaces); err != nil {
		workspaces = model.DefaultWorkspaces()
	}
	currentID := model.DefaultWorkspaceID
	if err := l.read(ctx, model.KeyCurrentWorkspaceID, &currentID); err != nil {
		currentID = model.DefaultWorkspaceID
	}
	return l.normalize(workspaces, currentID)
}

// Save writes both keys. Both writes are attempted even if the first fails.
func (l *Layout) Save(ctx context.Context, layout model.Layout) error {
	return errors.Join(
		l.write(ctx, model.KeyWorkspaces, layout.Workspaces),
		l.write(ctx, model.KeyCurrentWorkspaceID, layout.CurrentWorkspaceID),
	)
}

func (l *Layout) read(ctx context.Context, key string, target any) error {
	raw, found, err := l.store.Get(ctx, key)
	if err != nil {
		metrics.RecordStoreFailure("get")
		l.logger.Warn("Failed to read layout key, using default", "key", key, "error", err)
		return err
	}
	if !found {
		return errNotStored
	}
	if err := json.Unmarshal(raw, target); err != nil {
		metrics.RecordStoreFailure("decode")
		l.logger.Warn("Corrupt layout value, using default", "key", key, "error", err)
		return err
	}
	return nil
}

var errNotStored = errors.New("not stored")

func (l *Layout) write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := l.store.Set(ctx, key, raw); err != nil {
		metrics.RecordStoreFailure("set")
		return err
	}
	return nil
}

func (l *Layout) normalize(workspaces []model.Workspace, currentID string) model.Layout {
	seenWorkspace := make(map[string]bool, len(workspaces))
	seenWidget := make(map[string]bool)
	out := make([]model.Workspace, 0, len(workspaces))

	for _, ws := range workspaces {
		if ws.ID == "" || seenWorkspace[ws.ID] {
			l.logger.Warn("Dropping stored workspace with missing or duplicate id", "workspace_id", ws.ID)
			continue
		}
		seenWorkspace[ws.ID] = true

		widgets := make([]model.WidgetInstance, 0, len(ws.Widgets))
		for _, w := range ws.Widgets {
			if w.ID == "" || seenWidget[w.ID] {
				l.logger.Warn("Dropping stored widget with missing or duplicate id", "widget_id", w.ID)
				continue
			}
			seenWidget[w.ID] = true
			widgets = append(widgets, l.fillDefaults(w))
		}
		ws.Widgets = widgets
		out = append(out, ws)
	}

	if len(out) == 0 {
		out = model.DefaultWorkspaces()
	}
	if !seenWorkspace[currentID] {
		currentID = out[0].ID
	}
	return model.Layout{Workspaces: out, CurrentWorkspaceID: currentID}
}

// fillDefaults adds catalog defaults for configuration keys a stored widget
// lacks, as long as the result is still valid for its type.
func (l *Layout) fillDefaults(w model.WidgetInstance) model.WidgetInstance {
	if w.Config == nil {
		w.Config = map[string]any{}
	}
	if l.defs == nil {
		return w
	}
	def, ok := l.defs.Lookup(w.Type)
	if !ok {
		return w
	}
	filled := widgetconfig.FillDefaults(w.Config, def.DefaultConfig)
	if err := widgetconfig.Validate(w.Type, filled); err != nil {
		l.logger.Warn("Stored widget config is invalid, using defaults", "widget_id", w.ID, "error", err)
		filled = model.CloneConfig(def.DefaultConfig)
	}
	w.Config = filled
	return w
}
