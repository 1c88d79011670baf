package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/frahmantamala/bragboard/internal"
)

const signupFailedMessage = "Signup failed"

// bodyCarrier is implemented by API errors that keep the response body.
type bodyCarrier interface {
	ResponseBody() []byte
}

type validationDetail struct {
	Msg string        `json:"msg"`
	Loc []interface{} `json:"loc"`
}

// SignupError turns a rejected signup into a user-facing AppError. A
// "detail" array yields one message per item, a string is used as is, an
// object is shown as JSON, and anything else falls back to the error text.
func SignupError(err error) *internal.AppError {
	if err == nil {
		return nil
	}

	var bc bodyCarrier
	if errors.As(err, &bc) {
		if details, ok := detailMessages(bc.ResponseBody()); ok {
			return internal.NewValidationError(signupFailedMessage, internal.ErrCodeSignupRejected).
				WithDetails(internal.ValidationErrors{Errors: details}).
				WithCause(err)
		}
	}

	message := err.Error()
	if message == "" {
		message = signupFailedMessage
	}
	return internal.NewExternalError(signupFailedMessage, err).
		WithDetails(internal.ValidationErrors{Errors: []internal.ValidationError{{Message: message}}})
}

// DetailMessage returns the backend's "detail" reason carried by err,
// joining several messages with "; ".
func DetailMessage(err error) (string, bool) {
	var bc bodyCarrier
	if !errors.As(err, &bc) {
		return "", false
	}
	details, ok := detailMessages(bc.ResponseBody())
	if !ok {
		return "", false
	}
	messages := make([]string, 0, len(details))
	for _, d := range details {
		messages = append(messages, d.Message)
	}
	return strings.Join(messages, "; "), true
}

func detailMessages(body []byte) ([]internal.ValidationError, bool) {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if len(body) == 0 || json.Unmarshal(body, &envelope) != nil {
		return nil, false
	}
	raw := bytes.TrimSpace(envelope.Detail)
	if len(raw) == 0 {
		return nil, false
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if json.Unmarshal(raw, &items) != nil || len(items) == 0 {
			return nil, false
		}
		out := make([]internal.ValidationError, 0, len(items))
		for _, item := range items {
			out = append(out, detailItem(item))
		}
		return out, true
	case '"':
		var s string
		if json.Unmarshal(raw, &s) != nil || s == "" {
			return nil, false
		}
		return []internal.ValidationError{{Message: s}}, true
	case '{':
		return []internal.ValidationError{{Message: compact(raw)}}, true
	}
	return nil, false
}

func detailItem(item json.RawMessage) internal.ValidationError {
	var d validationDetail
	if json.Unmarshal(item, &d) == nil && d.Msg != "" {
		return internal.ValidationError{Message: d.Msg, Field: field(d.Loc)}
	}
	var s string
	if json.Unmarshal(item, &s) == nil && s != "" {
		return internal.ValidationError{Message: s}
	}
	return internal.ValidationError{Message: compact(item)}
}

// field is the last element of a pydantic loc path, e.g. ["body","email"].
func field(loc []interface{}) string {
	if len(loc) < 2 {
		return ""
	}
	return fmt.Sprint(loc[len(loc)-1])
}

func compact(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
