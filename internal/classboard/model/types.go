package model

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}

// WorkspaceListResponse is returned by GET /workspaces.
type WorkspaceListResponse struct {
	Workspaces         []Workspace `json:"workspaces"`
	CurrentWorkspaceID string      `json:"currentWorkspaceId"`
}
