package model

import "strings"

// MoveWidgetReq is sent on drag-end.
type MoveWidgetReq struct {
	ID string  `param:"id" validate:"required"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

func (r *MoveWidgetReq) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type MinimizeWidgetReq struct {
	ID        string `param:"id" validate:"required"`
	Minimized bool   `json:"minimized"`
}

func (r *MinimizeWidgetReq) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type RenameWidgetReq struct {
	ID   string `param:"id" validate:"required"`
	Name string `json:"name" validate:"required,min=1,max=50"`
}

func (r *RenameWidgetReq) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
