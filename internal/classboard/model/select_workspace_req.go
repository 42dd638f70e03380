package model

import "strings"

type SelectWorkspaceReq struct {
	ID string `json:"id" validate:"required,max=64"`
}

func (r *SelectWorkspaceReq) Validate() error {
	r.ID = strings.TrimSpace(r.ID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
