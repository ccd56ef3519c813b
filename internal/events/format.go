package events

import (
	"bytes"
	"fmt"

	"githubActivityFeed/internal/model"

	json "github.com/goccy/go-json"
)

// RecordError means one feed record lacked a field its line template needs.
type RecordError struct {
	EventID string
	Type    string
	Field   string
	Err     error
}

func (e *RecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("event %s (%s): payload: %v", e.EventID, e.Type, e.Err)
	}
	return fmt.Sprintf("event %s (%s): missing payload.%s", e.EventID, e.Type, e.Field)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Format renders one event as a single line.
func Format(e model.Event) (string, error) {
	p := fmt.Sprintf("[%s] > @%s", e.CreatedAt, e.Actor.Login)
	repo := e.Repo.Name

	missing := func(field string) error {
		return &RecordError{EventID: e.ID, Type: e.Type, Field: field}
	}

	switch e.Kind() {
	case model.KindCommitComment, model.KindIssueComment:
		var pl model.CommentPayload
		if err := decode(e, &pl); err != nil {
			return "", err
		}
		if pl.Comment == nil || pl.Comment.Body == nil {
			return "", missing("comment.body")
		}
		if e.Kind() == model.KindCommitComment {
			return fmt.Sprintf("%s commented on a commit in %s: '%s'", p, repo, *pl.Comment.Body), nil
		}
		return fmt.Sprintf("%s posted a comment in %s: '%s'", p, repo, *pl.Comment.Body), nil

	case model.KindCreate:
		var pl model.RefPayload
		if err := decode(e, &pl); err != nil {
			return "", err
		}
		if pl.RefType == nil {
			return "", missing("ref_type")
		}
		switch *pl.RefType {
		case "branch":
			if pl.Ref == nil {
				return "", missing("ref")
			}
			return fmt.Sprintf("%s created a new branch in %s called %s", p, repo, *pl.Ref), nil
		case "repository":
			return fmt.Sprintf("%s created a new repository called %s", p, repo), nil
		default:
			return fmt.Sprintf("%s created a new %s", p, *pl.RefType), nil
		}

	case model.KindDelete:
		var pl model.RefPayload
		if err := decode(e, &pl); err != nil {
			return "", err
		}
		if pl.RefType == nil {
			return "", missing("ref_type")
		}
		if pl.Ref == nil {
			return "", missing("ref")
		}
		return fmt.Sprintf("%s deleted %s '%s' from %s", p, *pl.RefType, *pl.Ref, repo), nil

	case model.KindFork:
		var pl model.ForkPayload
		if err := decode(e, &pl); err != nil {
			return "", err
		}
		forkee, ok := nameOf(pl.Forkee, "full_name")
		if !ok {
			return "", missing("forkee")
		}
		return fmt.Sprintf("%s forked %s --> %s", p, repo, forkee), nil

	case model.KindGollum:
		return fmt.Sprintf("%s modified the wiki page(s) in %s", p, repo), nil

	case model.KindIssues, model.KindRelease, model.KindPullRequestReviewThread:
		var pl model.ActionPayload
		if err := decode(e, &pl); err != nil {
			return "", err
		}
		if pl.Action == nil {
			return "", missing("action")
		}
		switch e.Kind() {
		case model.KindIssues:
			return fmt.Sprintf("%s %s an issue in %s", p, *pl.Action, repo), nil
		case model.KindRelease:
			return fmt.Sprintf("%s %s a release in %s", p, *pl.Action, repo), nil
		default:
			return fmt.Sprintf("%s marked a pull request as %s in %s", p, *pl.Action, repo), nil
		}

	case model.KindMember:
		var pl model.MemberPayload
		if err := decode(e, &pl); err != nil {
			return "", err
		}
		member, ok := nameOf(pl.Member, "login")
		if !ok {
			return "", missing("member")
		}
		return fmt.Sprintf("%s added %s as a member to %s", p, member, repo), nil

	case model.KindPublic:
		return fmt.Sprintf("%s changed %s from private to public", p, repo), nil

	case model.KindPullRequest:
		var pl model.PullRequestPayload
		if err := decode(e, &pl); err != nil {
			return "", err
		}
		if pl.Number == nil {
			return "", missing("number")
		}
		if pl.Action == nil {
			return "", missing("action")
		}
		return fmt.Sprintf("%s performed the following action on %s pull request %d: %s", p, repo, *pl.Number, *pl.Action), nil

	case model.KindPullRequestReview:
		return fmt.Sprintf("%s reviewed a pull request in %s", p, repo), nil

	case model.KindPullRequestReviewComment:
		return fmt.Sprintf("%s left a comment on a pull request in %s", p, repo), nil

	case model.KindPush:
		var pl model.PushPayload
		if err := decode(e, &pl); err != nil {
			return "", err
		}
		if pl.PushID == nil {
			return "", missing("push_id")
		}
		if pl.Size == nil {
			return "", missing("size")
		}
		return fmt.Sprintf("%s pushed %d commit(s) to %s (Push ID %d)", p, *pl.Size, repo, *pl.PushID), nil

	case model.KindSponsorship:
		var pl model.SponsorshipPayload
		if err := decode(e, &pl); err != nil {
			return "", err
		}
		if pl.Action == nil {
			return "", missing("action")
		}
		if pl.EffectiveDate == nil {
			return "", missing("effective_date")
		}
		return fmt.Sprintf("%s %s a sponsorship listing in %s, effective %s", p, *pl.Action, repo, *pl.EffectiveDate), nil

	case model.KindWatch:
		return fmt.Sprintf("%s starred the repository %s", p, repo), nil

	default:
		return fmt.Sprintf("[%s] > ***unhandled event for event type %s***", e.CreatedAt, e.Type), nil
	}
}

// decode unmarshals the payload into dst. An absent or null payload leaves dst
// zero, so the caller reports the first required field as missing.
func decode(e model.Event, dst any) error {
	raw := bytes.TrimSpace(e.Payload)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &RecordError{EventID: e.ID, Type: e.Type, Err: err}
	}
	return nil
}

// nameOf reads a field that is either a bare string or an object carrying key.
func nameOf(raw json.RawMessage, key string) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", false
	}
	v, ok := obj[key]
	if !ok {
		return "", false
	}
	if err := json.Unmarshal(v, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}
