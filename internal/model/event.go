package model

import json "github.com/goccy/go-json"

// Event is one record of the public events feed. Payload is decoded per Kind.
type Event struct {
	ID string `json:"id"`

	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	Repo      struct {
		Name string `json:"name"`
	} `json:"repo"`
	Actor struct {
		Login string `json:"login"`
	} `json:"actor"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (e *Event) Kind() Kind { return ParseKind(e.Type) }
