package strategies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doylet/CapacityReset-sub000/internal/providers"
	"github.com/doylet/CapacityReset-sub000/internal/types"
)

func TestNounChunkStrategy_SkillNounPhrase(t *testing.T) {
	model := &fakeNERModel{
		tokens: []providers.Token{
			{Text: "stakeholder", Tag: "NN"},
			{Text: "management", Tag: "NN"},
			{Text: "matters", Tag: "VBZ"},
		},
	}
	s := NewNounChunk(model, 80)
	section := types.Section{Type: "requirements", Text: "stakeholder management matters", Relevant: true}

	candidates, err := s.Extract(context.Background(), section)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, "stakeholder management", candidates[0].RawText)
	assert.Equal(t, "Stakeholder Management", candidates[0].NormalizedName)
	assert.Equal(t, types.MethodNounChunk, candidates[0].ExtractionMethod)
}

func TestNounChunkStrategy_GerundPhrase(t *testing.T) {
	model := &fakeNERModel{
		tokens: []providers.Token{
			{Text: "load", Tag: "NN"},
			{Text: "testing", Tag: "VBG"},
		},
	}
	s := NewNounChunk(model, 80)

	candidates, err := s.Extract(context.Background(), types.Section{Text: "load testing"})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "load testing", candidates[0].RawText)
}

func TestNounChunkStrategy_RejectsPlainNouns(t *testing.T) {
	model := &fakeNERModel{
		tokens: []providers.Token{
			{Text: "team", Tag: "NN"},
			{Text: "player", Tag: "NN"},
		},
	}
	s := NewNounChunk(model, 80)

	candidates, err := s.Extract(context.Background(), types.Section{Text: "team player"})
	require.NoError(t, err)
	assert.Empty(t, candidates, "phrase without any skill signal must be rejected")
}

func TestNounChunkStrategy_RejectsVerbPhrases(t *testing.T) {
	model := &fakeNERModel{
		tokens: []providers.Token{
			{Text: "manage", Tag: "VB"},
			{Text: "deployment", Tag: "NN"},
		},
	}
	s := NewNounChunk(model, 80)

	candidates, err := s.Extract(context.Background(), types.Section{Text: "manage deployment"})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestNounChunkStrategy_TechTokenSignal(t *testing.T) {
	model := &fakeNERModel{
		tokens: []providers.Token{
			{Text: "GraphQL", Tag: "NNP"},
			{Text: "APIs", Tag: "NNS"},
		},
	}
	s := NewNounChunk(model, 80)

	candidates, err := s.Extract(context.Background(), types.Section{Text: "GraphQL APIs"})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "GraphQL APIs", candidates[0].RawText)
}

func TestNounChunkStrategy_PrefersLongestChunk(t *testing.T) {
	model := &fakeNERModel{
		tokens: []providers.Token{
			{Text: "data", Tag: "NN"},
			{Text: "pipelines", Tag: "NNS"},
			{Text: "migration", Tag: "NN"},
		},
	}
	s := NewNounChunk(model, 80)

	candidates, err := s.Extract(context.Background(), types.Section{Text: "data pipelines migration"})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "data pipelines migration", candidates[0].RawText)
}
