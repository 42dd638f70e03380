package widgetconfig

import "classboard/internal/classboard/model"

// Updater is the single handle a widget body gets on persisted state: it
// requests that partial be merged into the widget's own configuration.
type Updater func(partial map[string]any) error

// Merge shallow-merges partial over current. Keys in partial overwrite,
// keys absent from partial are kept. Neither argument is modified and the
// result aliases neither.
func Merge(current, partial map[string]any) map[string]any {
	out := model.CloneConfig(current)
	if out == nil {
		out = make(map[string]any, len(partial))
	}
	for k, v := range model.CloneConfig(partial) {
		out[k] = v
	}
	return out
}

// Apply merges partial into current and validates the result against the
// schema of widgetType. On error current is still the valid configuration.
func Apply(widgetType string, current, partial map[string]any) (map[string]any, error) {
	normalized, err := Encode(partial)
	if err != nil {
		return nil, err
	}
	merged := Merge(current, normalized)
	if err := Validate(widgetType, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// FillDefaults adds every key of defaults that cfg lacks. Existing keys win.
func FillDefaults(cfg, defaults map[string]any) map[string]any {
	out := model.CloneConfig(cfg)
	if out == nil {
		out = make(map[string]any, len(defaults))
	}
	for k, v := range defaults {
		if _, ok := out[k]; !ok {
			out[k] = model.CloneConfig(map[string]any{k: v})[k]
		}
	}
	return out
}
