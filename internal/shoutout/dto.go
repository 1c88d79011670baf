package shoutout

import (
	"strings"

	"github.com/frahmantamala/bragboard/internal"
	shoutoutDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/shoutout"
)

type CreateShoutoutDTO struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	RecipientIDs []string `json:"recipientIds"`
}

func (dto CreateShoutoutDTO) Validate() error {
	var errs []internal.ValidationError
	if strings.TrimSpace(dto.Title) == "" {
		errs = append(errs, internal.ValidationError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(dto.Content) == "" {
		errs = append(errs, internal.ValidationError{Field: "content", Message: "content is required"})
	}
	if len(errs) > 0 {
		return internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed).
			WithDetails(internal.ValidationErrors{Errors: errs})
	}
	return nil
}

func (dto CreateShoutoutDTO) ToDataModel(authorID string) shoutoutDatamodel.CreateRequest {
	recipients := dto.RecipientIDs
	if recipients == nil {
		recipients = []string{}
	}
	return shoutoutDatamodel.CreateRequest{
		Title:        strings.TrimSpace(dto.Title),
		Content:      strings.TrimSpace(dto.Content),
		AuthorID:     authorID,
		RecipientIDs: recipients,
	}
}

// UpdateShoutoutDTO changes only the fields it carries.
type UpdateShoutoutDTO struct {
	Title        *string   `json:"title,omitempty"`
	Content      *string   `json:"content,omitempty"`
	RecipientIDs *[]string `json:"recipientIds,omitempty"`
}

func (dto UpdateShoutoutDTO) Validate() error {
	if dto.Title != nil && strings.TrimSpace(*dto.Title) == "" {
		return internal.NewValidationFieldError("title", "title cannot be empty", internal.ErrCodeValidationFailed)
	}
	if dto.Content != nil && strings.TrimSpace(*dto.Content) == "" {
		return internal.NewValidationFieldError("content", "content cannot be empty", internal.ErrCodeValidationFailed)
	}
	if dto.Title == nil && dto.Content == nil && dto.RecipientIDs == nil {
		return internal.NewValidationError("Nothing to update", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (dto UpdateShoutoutDTO) ToDataModel() shoutoutDatamodel.UpdateRequest {
	return shoutoutDatamodel.UpdateRequest{
		Title:        dto.Title,
		Content:      dto.Content,
		RecipientIDs: dto.RecipientIDs,
	}
}

type CommentDTO struct {
	Content string `json:"content"`
}

func (dto CommentDTO) Validate() error {
	if strings.TrimSpace(dto.Content) == "" {
		return internal.NewValidationFieldError("content", "comment cannot be empty", internal.ErrCodeValidationFailed)
	}
	return nil
}

type FeedResponse struct {
	Shoutouts []Shoutout `json:"shoutouts"`
}

// DetailResponse carries a nil shoutout when it does not exist.
type DetailResponse struct {
	Shoutout *Shoutout `json:"shoutout"`
}

type CheerResponse struct {
	Cheers     []string `json:"cheers"`
	CheerCount int      `json:"cheerCount"`
	Cheered    bool     `json:"cheered"`
}
