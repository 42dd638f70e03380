package model

import "strings"

// RenameWorkspaceReq carries a new workspace name. A blank name passes
// validation here; the workspace collection rejects it and keeps the old one.
type RenameWorkspaceReq struct {
	ID   string `param:"id" validate:"required"`
	Name string `json:"name" validate:"max=30"`
}

func (r *RenameWorkspaceReq) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
