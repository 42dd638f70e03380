package model

import "strings"

type CreateWorkspaceReq struct {
	Name string `json:"name" validate:"max=30"`
}

func (r *CreateWorkspaceReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
