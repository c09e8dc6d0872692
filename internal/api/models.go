package api

// GenerateIdeaRequest represents the request body for generating a startup plan.
// Empty input is reported by the service as a validation warning, so Input
// carries no required tag. Mode is parsed by domain.ParseInputMode, which
// also accepts the display labels.
type GenerateIdeaRequest struct {
	Mode  string `json:"mode"  validate:"max=64"`
	Input string `json:"input" validate:"max=10000"`
}

// GenerateIdeaResponse represents the response data for a generated plan.
type GenerateIdeaResponse struct {
	Mode         string   `json:"mode"`
	PromptFields []string `json:"prompt_fields"`
	Result       string   `json:"result"`
}
