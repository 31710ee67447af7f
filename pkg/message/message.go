// Package message models chat messages and turns assistant text into
// renderable content: plain prose interleaved with annotated equipment
// figures referenced by inline tags.
package message

import "strings"

// Role identifies who produced a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Media is an inline attachment, typically a photo of the customer's
// equipment. Data is either a base64 payload or a full data URL.
type Media struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Payload returns the base64 body of the attachment with any data URL
// prefix stripped.
func (m Media) Payload() string {
	if i := strings.IndexByte(m.Data, ','); i >= 0 && strings.HasPrefix(m.Data, "data:") {
		return m.Data[i+1:]
	}
	return m.Data
}

// ChatMessage is one turn of the support conversation. History is
// append-only except for a full clear.
type ChatMessage struct {
	ID      string `json:"id"`
	Role    Role   `json:"role"`
	Text    string `json:"text"`
	Media   *Media `json:"media,omitempty"`
	IsError bool   `json:"isError,omitempty"`
}
