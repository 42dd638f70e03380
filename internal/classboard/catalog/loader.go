package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"classboard/internal/classboard/model"
)

//go:embed definitions/widgets.json
var definitionsFS embed.FS

// Loader loads widget type definitions from embedded JSON
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// LoadDefinitions returns the definitions in file order.
func (l *Loader) LoadDefinitions() ([]model.WidgetTypeDefinition, error) {
	data, err := definitionsFS.ReadFile("definitions/widgets.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read widget definitions: %w", err)
	}

	var defs []model.WidgetTypeDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to parse widget definitions: %w", err)
	}
	return defs, nil
}
