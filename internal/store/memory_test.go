package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

func TestMemoryStore_SaveAndVersion(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	records := []types.SkillRecord{
		{CanonicalName: "Python", Category: types.CategoryProgrammingLanguages, Confidence: 0.8},
	}
	require.NoError(t, m.Save(ctx, "doc-1", "v1-abc", records))

	v, err := m.Version(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "v1-abc", v)

	got, ok := m.Records("doc-1")
	require.True(t, ok)
	assert.Equal(t, records, got)
}

func TestMemoryStore_VersionNotFound(t *testing.T) {
	m := NewMemory()

	_, err := m.Version(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Save(ctx, "doc-1", "v1-old", []types.SkillRecord{
		{CanonicalName: "Python"}, {CanonicalName: "Go"},
	}))
	require.NoError(t, m.Save(ctx, "doc-1", "v1-new", []types.SkillRecord{
		{CanonicalName: "Rust"},
	}))

	v, err := m.Version(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "v1-new", v)

	got, _ := m.Records("doc-1")
	require.Len(t, got, 1)
	assert.Equal(t, "Rust", got[0].CanonicalName)
}

func TestMemoryStore_RecordsCopied(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	original := []types.SkillRecord{{CanonicalName: "Python"}}
	require.NoError(t, m.Save(ctx, "doc-1", "v1", original))

	got, _ := m.Records("doc-1")
	got[0].CanonicalName = "mutated"

	again, _ := m.Records("doc-1")
	assert.Equal(t, "Python", again[0].CanonicalName, "callers must not share backing arrays")
}
