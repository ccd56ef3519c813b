package model

import json "github.com/goccy/go-json"

// Payload shapes, one per variant, holding only what the line templates print.
// Pointer fields distinguish "absent" from the zero value.

type Comment struct {
	Body *string `json:"body"`
}

type CommentPayload struct {
	Comment *Comment `json:"comment"`
}

type RefPayload struct {
	Ref     *string `json:"ref"`
	RefType *string `json:"ref_type"`
}

// ForkPayload keeps forkee raw: the live API sends a repository object,
// older fixtures a plain string.
type ForkPayload struct {
	Forkee json.RawMessage `json:"forkee"`
}

type MemberPayload struct {
	Member json.RawMessage `json:"member"`
}

type ActionPayload struct {
	Action *string `json:"action"`
}

type PullRequestPayload struct {
	Number *int64  `json:"number"`
	Action *string `json:"action"`
}

type PushPayload struct {
	PushID *int64 `json:"push_id"`
	Size   *int64 `json:"size"`
}

type SponsorshipPayload struct {
	Action        *string `json:"action"`
	EffectiveDate *string `json:"effective_date"`
}
