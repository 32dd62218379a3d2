package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Rendering happens in the central HTTP error handler; the type
// is declared here for the API documentation annotations.
type errorResponse struct {
	Error string `json:"error"`
}
