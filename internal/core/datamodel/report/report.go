package report

import "github.com/frahmantamala/bragboard/internal/core/datamodel"

type Request struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	TargetType string `json:"target_type"`
	TargetID   string `json:"target_id"`
}

type Response struct {
	ID datamodel.ID `json:"id"`
}
