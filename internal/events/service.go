package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"githubActivityFeed/internal/github"
	"githubActivityFeed/internal/logger"
	"githubActivityFeed/internal/model"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Report is the rendered feed of one user.
type Report struct {
	Username string   `json:"username"`
	Lines    []string `json:"lines"`
	Skipped  int      `json:"skipped"`
}

type Service interface {
	Report(ctx context.Context, username string) (*Report, error)
	Resolve(ctx context.Context, username string) *Outcome
	Write(ctx context.Context, w io.Writer, username string) error
	RecentLookups(ctx context.Context, limit int) ([]model.Lookup, error)
}

type service struct {
	fetcher  github.Fetcher
	repo     RepoInterface
	cacheTTL int
	now      func() time.Time
}

func NewService(f github.Fetcher, r RepoInterface, cacheTTL int) Service {
	return &service{fetcher: f, repo: r, cacheTTL: cacheTTL, now: time.Now}
}

// Report fetches and renders the feed. A record that cannot be rendered is
// skipped and counted; the rest still render in feed order.
func (s *service) Report(ctx context.Context, username string) (*Report, error) {
	if data, hit, err := s.repo.GetReport(ctx, username); err != nil {
		logger.Lg.Warn("report cache read failed", zap.String("username", username), zap.Error(err))
	} else if hit {
		var rep Report
		if err := json.Unmarshal(data, &rep); err == nil {
			return &rep, nil
		}
		logger.Lg.Warn("report cache entry unreadable", zap.String("username", username))
	}

	evts, err := s.fetcher.FetchEvents(ctx, username)
	if err != nil {
		return nil, err
	}

	rep := &Report{Username: username, Lines: make([]string, 0, len(evts))}
	for _, e := range evts {
		line, err := Format(e)
		if err != nil {
			rep.Skipped++
			logger.Lg.Warn("record_skipped",
				zap.String("id", e.ID),
				zap.String("type", e.Type),
				zap.Error(err),
			)
			continue
		}
		rep.Lines = append(rep.Lines, line)
	}

	data, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	if err := s.repo.SetReport(ctx, username, data, s.cacheTTL); err != nil {
		logger.Lg.Error("warn: cache store failed", zap.Error(err))
	}
	return rep, nil
}

// Outcome is one reporter run: the report on success, otherwise the failure,
// plus the exact lines the CLI prints for it.
type Outcome struct {
	Username string
	Status   int
	Report   *Report
	Err      error
	Lines    []string
}

// Resolve runs the reporter once and records the run in lookup history.
func (s *service) Resolve(ctx context.Context, username string) *Outcome {
	o := &Outcome{Username: username}
	lookup := &model.Lookup{
		ID:        uuid.NewString(),
		Username:  username,
		FetchedAt: s.now().UTC().Format(time.RFC3339),
	}

	rep, err := s.Report(ctx, username)
	var fe *github.FetchError
	switch {
	case errors.As(err, &fe) && fe.Kind == github.UnexpectedStatus:
		o.Status, o.Err = fe.StatusCode, err
		o.Lines = []string{StatusLine(fe.StatusCode, username)}
	case err != nil:
		if fe != nil {
			o.Status = fe.StatusCode
		}
		o.Err = err
		lookup.Error = err.Error()
		o.Lines = []string{UnexpectedLine(err)}
	default:
		o.Status, o.Report = 200, rep
		lookup.Printed = len(rep.Lines)
		lookup.Skipped = rep.Skipped
		o.Lines = append([]string(nil), rep.Lines...)
		if rep.Skipped > 0 {
			o.Lines = append(o.Lines, SkippedLine(rep.Skipped))
		}
	}
	lookup.Status = o.Status

	if err := s.repo.SaveLookup(ctx, lookup); err != nil {
		logger.Lg.Error("lookup history save failed", zap.Error(err))
	}
	return o
}

// Write prints the outcome of one run for username.
func (s *service) Write(ctx context.Context, w io.Writer, username string) error {
	for _, line := range s.Resolve(ctx, username).Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) RecentLookups(ctx context.Context, limit int) ([]model.Lookup, error) {
	return s.repo.RecentLookups(ctx, limit)
}
