package model

// Position is the top-left corner of a widget on the workspace canvas.
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Size is a widget's footprint in layout units.
type Size struct {
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// WidgetTypeDefinition is a catalog entry. Instances are created from it.
type WidgetTypeDefinition struct {
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	DefaultSize   Size           `json:"defaultSize"`
	DefaultConfig map[string]any `json:"defaultConfig"`
}

// Clone returns a copy whose DefaultConfig shares nothing with d.
func (d WidgetTypeDefinition) Clone() WidgetTypeDefinition {
	d.DefaultConfig = CloneConfig(d.DefaultConfig)
	return d
}

// WidgetInstance is a widget placed on a workspace
type WidgetInstance struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Position    Position       `json:"position"`
	Size        Size           `json:"size"`
	Config      map[string]any `json:"config"`
	IsMinimized bool           `json:"isMinimized"`
}

// Clone returns a deep copy of w.
func (w WidgetInstance) Clone() WidgetInstance {
	w.Config = CloneConfig(w.Config)
	return w
}

// WidgetPatch lists the top-level fields to replace on a widget.
// Nil fields are left untouched. Config is replaced wholesale; callers
// merge partial configuration before building the patch.
type WidgetPatch struct {
	Name        *string
	Position    *Position
	Size        *Size
	Config      map[string]any
	IsMinimized *bool
}
