package dto

// Error body for client and server errors with a single message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// One failing query parameter in a validation error body.
type ValidationIssue struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input *string  `json:"input"`
}

// Error body for 422 responses.
type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}
