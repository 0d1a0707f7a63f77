package models

// AnalyzeRequest is the payload for running the need-analysis pipeline over
// a single vacancy source. Either Content or URL must be set; when URL is
// given the server fetches and flattens the page text before running the
// pipeline.
type AnalyzeRequest struct {
	Content       string   `json:"content,omitempty"`
	URL           string   `json:"url,omitempty" validate:"omitempty,url"`
	SourceType    string   `json:"source_type,omitempty" validate:"omitempty,oneof=url pdf docx text"`
	RequiredPaths []string `json:"required_paths,omitempty" validate:"omitempty,dive,min=1"`
}
