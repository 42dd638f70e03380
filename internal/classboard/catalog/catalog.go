// Package catalog is the read-only registry of widget types. It is built
// once at startup and handed to whoever needs it.
package catalog

import (
	"fmt"

	"classboard/internal/classboard/model"
	"classboard/internal/classboard/widgetconfig"
)

// Catalog holds the widget type definitions. Safe for concurrent use since
// nothing mutates it after New.
type Catalog struct {
	defs  []model.WidgetTypeDefinition
	index map[string]int
}

// New loads the embedded definitions and checks each default configuration
// against its schema.
func New() (*Catalog, error) {
	defs, err := NewLoader().LoadDefinitions()
	if err != nil {
		return nil, err
	}
	return FromDefinitions(defs)
}

// FromDefinitions builds a catalog from explicit definitions.
func FromDefinitions(defs []model.WidgetTypeDefinition) (*Catalog, error) {
	c := &Catalog{
		defs:  make([]model.WidgetTypeDefinition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		if def.Type == "" {
			return nil, fmt.Errorf("widget definition %q has no type", def.Name)
		}
		if _, dup := c.index[def.Type]; dup {
			return nil, fmt.Errorf("duplicate widget type %q", def.Type)
		}
		if err := widgetconfig.Validate(def.Type, def.DefaultConfig); err != nil {
			return nil, fmt.Errorf("default config of %q: %w", def.Type, err)
		}
		c.index[def.Type] = len(c.defs)
		c.defs = append(c.defs, def.Clone())
	}
	return c, nil
}

// List returns every definition in catalog order.
func (c *Catalog) List() []model.WidgetTypeDefinition {
	out := make([]model.WidgetTypeDefinition, len(c.defs))
	for i, def := range c.defs {
		out[i] = def.Clone()
	}
	return out
}

// Lookup finds a definition by type id.
func (c *Catalog) Lookup(widgetType string) (model.WidgetTypeDefinition, bool) {
	i, ok := c.index[widgetType]
	if !ok {
		return model.WidgetTypeDefinition{}, false
	}
	return c.defs[i].Clone(), true
}
