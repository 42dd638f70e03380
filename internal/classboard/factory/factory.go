// Package factory creates widget instances from catalog definitions.
package factory

import (
	"errors"
	"fmt"

	"classboard/internal/classboard/model"

	"github.com/google/uuid"
)

var ErrUnknownType = errors.New("unknown widget type")

// Lookup resolves a widget type id to its definition.
type Lookup interface {
	Lookup(widgetType string) (model.WidgetTypeDefinition, bool)
}

type Factory struct {
	defs  Lookup
	newID func() string
}

type Option func(*Factory)

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(fn func() string) Option {
	return func(f *Factory) {
		f.newID = fn
	}
}

func New(defs Lookup, opts ...Option) *Factory {
	f := &Factory{defs: defs, newID: uuid.NewString}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns a new instance of widgetType at the default position with
// a private copy of the type's default size and configuration.
func (f *Factory) Create(widgetType string) (model.WidgetInstance, error) {
	def, ok := f.defs.Lookup(widgetType)
	if !ok {
		return model.WidgetInstance{}, fmt.Errorf("%w: %q", ErrUnknownType, widgetType)
	}

	return model.WidgetInstance{
		ID:          f.newID(),
		Type:        def.Type,
		Name:        def.Name,
		Position:    model.Position{X: model.DefaultWidgetX, Y: model.DefaultWidgetY},
		Size:        def.DefaultSize,
		Config:      model.CloneConfig(def.DefaultConfig),
		IsMinimized: false,
	}, nil
}
