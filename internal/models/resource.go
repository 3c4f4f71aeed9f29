package models

// Resource is a Helix record passed through to callers without inspection.
type Resource = map[string]interface{}

type (
	User   = Resource
	Stream = Resource
	Game   = Resource
)

type HelixDataResponse struct {
	Data []Resource `json:"data"`
}
