package model

import "strings"

type AddWidgetReq struct {
	Type string `json:"type" validate:"required,max=32"`
}

func (r *AddWidgetReq) Validate() error {
	r.Type = strings.TrimSpace(r.Type)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
