package request_models

type SuggestionRequest struct {
	ChildAge  int    `json:"childAge" binding:"required,gt=0"`
	ChildName string `json:"childName"`
}

type ContextualSuggestionRequest struct {
	ChildAge  int    `json:"childAge" binding:"required,gt=0"`
	ChildName string `json:"childName"`
	Context   string `json:"context" binding:"required"`
}
