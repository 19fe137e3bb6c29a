package app

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsListsSortedByVersion(t *testing.T) {
	t.Chdir(t.TempDir())
	resolver := &fakeResolver{tags: map[string]string{
		"v0.9":  "aaaaaaaabbbbbbbbccccccccddddddddeeeeeeee",
		"v0.10": "bbbbbbbbccccccccddddddddeeeeeeeeffffffff",
		"v0.2":  "ccccccccddddddddeeeeeeeeffffffff00000000",
	}}
	s := testService(resolver, nil, nil, nil)

	result, err := s.Tags(context.Background(), TagsRequest{
		Repo: "https://example.com/aco-scripts.git",
	})
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)

	// Numeric version order, not lexical: 0.10 outranks 0.9.
	assert.Equal(t, "v0.2", result.Entries[0].Tag)
	assert.Equal(t, "v0.9", result.Entries[1].Tag)
	assert.Equal(t, "v0.10", result.Entries[2].Tag)
	assert.Equal(t, "0.10", result.Entries[2].Version)
	assert.Equal(t, "bbbbbbb", result.Entries[2].ShortCommit)
}

func TestTagsLatestOnly(t *testing.T) {
	t.Chdir(t.TempDir())
	resolver := &fakeResolver{tags: map[string]string{
		"v0.9":  "aaaaaaaabbbbbbbbccccccccddddddddeeeeeeee",
		"v0.10": "bbbbbbbbccccccccddddddddeeeeeeeeffffffff",
	}}
	s := testService(resolver, nil, nil, nil)

	result, err := s.Tags(context.Background(), TagsRequest{
		Repo:   "https://example.com/aco-scripts.git",
		Latest: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "v0.10", result.Entries[0].Tag)
}

func TestTagsLatestOnEmptyRemote(t *testing.T) {
	t.Chdir(t.TempDir())
	s := testService(&fakeResolver{}, nil, nil, nil)

	_, err := s.Tags(context.Background(), TagsRequest{
		Repo:   "https://example.com/aco-scripts.git",
		Latest: true,
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestTagsRequiresRepository(t *testing.T) {
	t.Chdir(t.TempDir())
	s := testService(&fakeResolver{}, nil, nil, nil)

	_, err := s.Tags(context.Background(), TagsRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
