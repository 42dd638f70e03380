package widgetconfig

import (
	"encoding/json"
	"errors"
	"fmt"

	"classboard/internal/classboard/model"
)

var (
	ErrUnknownType   = errors.New("unknown widget type")
	ErrInvalidConfig = errors.New("invalid widget configuration")
)

// Decode converts an opaque configuration into the schema of its widget
// type and validates it. The returned value is a pointer to one of the
// *Config structs of this package.
func Decode(widgetType string, cfg map[string]any) (Config, error) {
	schema, ok := newSchema(widgetType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, widgetType)
	}
	if err := decodeInto(cfg, schema); err != nil {
		return nil, err
	}
	if err := check(schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// DecodeAs decodes cfg straight into the schema type T.
func DecodeAs[T Config](cfg map[string]any) (T, error) {
	var out T
	if err := decodeInto(cfg, &out); err != nil {
		return out, err
	}
	if err := check(out); err != nil {
		return out, err
	}
	return out, nil
}

// Validate reports whether cfg satisfies the schema of widgetType.
func Validate(widgetType string, cfg map[string]any) error {
	_, err := Decode(widgetType, cfg)
	return err
}

// Encode turns any JSON-shaped value (a schema struct or a map with Go
// native values) into the opaque mapping stored on widget instances.
func Encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return out, nil
}

// nullPath returns the path of the first null value inside v. Schema
// fields would silently take their zero value from it.
func nullPath(v any, path string) (string, bool) {
	switch t := v.(type) {
	case nil:
		return path, true
	case map[string]any:
		for k, e := range t {
			if p, ok := nullPath(e, joinPath(path, k)); ok {
				return p, true
			}
		}
	case []any:
		for i, e := range t {
			if p, ok := nullPath(e, fmt.Sprintf("%s[%d]", path, i)); ok {
				return p, true
			}
		}
	case []map[string]any:
		for i, e := range t {
			if p, ok := nullPath(e, fmt.Sprintf("%s[%d]", path, i)); ok {
				return p, true
			}
		}
	}
	return "", false
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func decodeInto(cfg map[string]any, target any) error {
	for k, v := range cfg {
		if p, ok := nullPath(v, k); ok {
			return fmt.Errorf("%w: %s is null", ErrInvalidConfig, p)
		}
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// crossChecker is implemented by schemas with rules spanning several fields.
type crossChecker interface {
	crossCheck() error
}

func check(v any) error {
	if err := model.GetValidator().Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, model.FormatValidationError(err).Message)
	}
	if cc, ok := v.(crossChecker); ok {
		if err := cc.crossCheck(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}
