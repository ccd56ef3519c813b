package model

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	assert.Equal(t, KindPush, ParseKind("PushEvent"))
	assert.Equal(t, KindPullRequestReviewThread, ParseKind("PullRequestReviewThreadEvent"))
	assert.Equal(t, KindUnknown, ParseKind("pushevent"))
	assert.Equal(t, KindUnknown, ParseKind(""))
	assert.Len(t, kindNames, 17)
	for name, k := range kindNames {
		assert.Equal(t, name, k.String())
	}
	assert.Equal(t, "Unknown", KindUnknown.String())
}

func TestEvent_Decode(t *testing.T) {
	var e Event
	err := json.Unmarshal([]byte(`{"id":"9","type":"ForkEvent","actor":{"login":"alice"},
		"repo":{"name":"foo/bar"},"created_at":"2024-01-01T00:00:00Z","payload":{"forkee":{"full_name":"alice/bar"}}}`), &e)

	require.NoError(t, err)
	assert.Equal(t, KindFork, e.Kind())
	assert.Equal(t, "alice", e.Actor.Login)
	assert.JSONEq(t, `{"forkee":{"full_name":"alice/bar"}}`, string(e.Payload))
}
