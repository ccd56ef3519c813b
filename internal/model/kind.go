package model

// Kind is the closed set of event types the reporter knows how to render.
type Kind int

const (
	KindUnknown Kind = iota
	KindCommitComment
	KindCreate
	KindDelete
	KindFork
	KindGollum
	KindIssueComment
	KindIssues
	KindMember
	KindPublic
	KindPullRequest
	KindPullRequestReview
	KindPullRequestReviewComment
	KindPullRequestReviewThread
	KindPush
	KindRelease
	KindSponsorship
	KindWatch
)

var kindNames = map[string]Kind{
	"CommitCommentEvent":            KindCommitComment,
	"CreateEvent":                   KindCreate,
	"DeleteEvent":                   KindDelete,
	"ForkEvent":                     KindFork,
	"GollumEvent":                   KindGollum,
	"IssueCommentEvent":             KindIssueComment,
	"IssuesEvent":                   KindIssues,
	"MemberEvent":                   KindMember,
	"PublicEvent":                   KindPublic,
	"PullRequestEvent":              KindPullRequest,
	"PullRequestReviewEvent":        KindPullRequestReview,
	"PullRequestReviewCommentEvent": KindPullRequestReviewComment,
	"PullRequestReviewThreadEvent":  KindPullRequestReviewThread,
	"PushEvent":                     KindPush,
	"ReleaseEvent":                  KindRelease,
	"SponsorshipEvent":              KindSponsorship,
	"WatchEvent":                    KindWatch,
}

// ParseKind maps the API "type" discriminant to a Kind. Anything not listed is KindUnknown.
func ParseKind(s string) Kind {
	if k, ok := kindNames[s]; ok {
		return k
	}
	return KindUnknown
}

func (k Kind) String() string {
	for name, v := range kindNames {
		if v == k {
			return name
		}
	}
	return "Unknown"
}
