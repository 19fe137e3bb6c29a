package adapters

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acopack/tests/testutil"
)

func TestResolveTagLightweight(t *testing.T) {
	testutil.RequireGit(t)
	dir := t.TempDir()
	hash := testutil.UpstreamFixture(t, dir, "v0.1")

	resolver := NewGitRemoteAdapter()
	commit, err := resolver.ResolveTag(t.Context(), dir, "v0.1")
	require.NoError(t, err)
	assert.Equal(t, hash.String(), commit)
}

func TestResolveTagAnnotatedPeelsToCommit(t *testing.T) {
	testutil.RequireGit(t)
	dir := t.TempDir()
	repo := testutil.InitUpstreamRepo(t, dir)
	hash := testutil.CommitFiles(t, repo, dir, map[string]string{
		"main.py": "X = 1\n",
	}, "initial import")
	testutil.TagAnnotated(t, repo, "v0.2", hash)

	resolver := NewGitRemoteAdapter()
	commit, err := resolver.ResolveTag(t.Context(), dir, "v0.2")
	require.NoError(t, err)
	assert.Equal(t, hash.String(), commit,
		"annotated tags must resolve to the peeled commit, not the tag object")
}

func TestResolveTagNotFound(t *testing.T) {
	testutil.RequireGit(t)
	dir := t.TempDir()
	testutil.UpstreamFixture(t, dir, "v0.1")

	resolver := NewGitRemoteAdapter()
	_, err := resolver.ResolveTag(t.Context(), dir, "v9.9")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestListTags(t *testing.T) {
	testutil.RequireGit(t)
	dir := t.TempDir()
	repo := testutil.InitUpstreamRepo(t, dir)
	first := testutil.CommitFiles(t, repo, dir, map[string]string{
		"main.py": "X = 1\n",
	}, "first")
	testutil.TagLightweight(t, repo, "v0.1", first)
	second := testutil.CommitFiles(t, repo, dir, map[string]string{
		"main.py": "X = 2\n",
	}, "second")
	testutil.TagAnnotated(t, repo, "v0.2", second)

	resolver := NewGitRemoteAdapter()
	tags, err := resolver.ListTags(t.Context(), dir)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	byName := map[string]string{}
	for _, tag := range tags {
		byName[tag.Name] = tag.Hash
	}
	assert.Equal(t, first.String(), byName["v0.1"])
	assert.Equal(t, second.String(), byName["v0.2"])
}
