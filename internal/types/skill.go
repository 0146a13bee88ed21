// Package types defines the shared data model for the skill extraction engine.
package types

// Extraction method identifiers. Each strategy stamps its candidates with one
// of these so scoring can apply the per-method reliability weight and merged
// records can report which strategies contributed.
const (
	MethodLexicon   = "lexicon_match"
	MethodAlias     = "alias_match"
	MethodNER       = "ner"
	MethodNounChunk = "noun_chunk"
	MethodSemantic  = "semantic"
	MethodPattern   = "pattern"
)

// Skill categories used by the default lexicon. Custom lexicons may introduce
// additional categories; CategoryUncategorized is the fallback for candidates
// no index could classify.
const (
	CategoryProgrammingLanguages = "programming_languages"
	CategoryFrameworks           = "frameworks"
	CategoryDatabases            = "databases"
	CategoryCloudPlatforms       = "cloud_platforms"
	CategoryDevOpsTools          = "devops_tools"
	CategoryDataTools            = "data_tools"
	CategorySoftSkills           = "soft_skills"
	CategoryCertifications       = "certifications"
	CategoryUncategorized        = "uncategorized"
)

// Section is a contiguous span of document text classified as relevant,
// excluded, or unclassified for skill extraction. Sections live for a single
// extraction call and are never persisted.
type Section struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Relevant bool   `json:"is_relevant"`
}

// SkillCandidate is a raw extraction produced by a single strategy. Many
// candidates may describe the same logical skill before merging.
type SkillCandidate struct {
	RawText          string  `json:"raw_text"`
	NormalizedName   string  `json:"normalized_name"`
	Category         string  `json:"category"`
	ConfidenceRaw    float64 `json:"confidence_raw"`
	ContextSnippet   string  `json:"context_snippet"`
	SourceField      string  `json:"source_field"`
	ExtractionMethod string  `json:"extraction_method"`
}

// SkillRecord is the final, merged output for one skill. Within a single
// extraction call no two records share (lower(CanonicalName), Category).
type SkillRecord struct {
	CanonicalName    string   `json:"canonical_name"`
	Category         string   `json:"category"`
	Confidence       float64  `json:"confidence"`
	ContextSnippet   string   `json:"context_snippet"`
	SourceStrategies []string `json:"source_strategies"`
	ExtractorVersion string   `json:"extractor_version"`
}

// AliasEntry maps a surface-form variant to a canonical skill name and
// category. The alias table is read-only at extraction time.
type AliasEntry struct {
	Alias         string `json:"alias"`
	CanonicalName string `json:"canonical_name"`
	Category      string `json:"category"`
}

// LexiconEntry groups canonical skill names under one category.
type LexiconEntry struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// ExtractionResult is what a caller receives for one document.
type ExtractionResult struct {
	DocumentID       string        `json:"document_id"`
	Records          []SkillRecord `json:"records"`
	ExtractorVersion string        `json:"extractor_version"`
}
