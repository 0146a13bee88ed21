// Package providers defines the ports through which the engine receives its
// lexicon, alias table, and NLP models, plus the reference implementations
// shipped with the repo. The engine owns no persistent state: everything here
// is loaded once at construction and shared read-only afterwards.
package providers

import (
	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// LexiconProvider supplies the canonical skill lexicon. The lexicon is a
// required input; providers returning an empty table cause an initialization
// error in the engine.
type LexiconProvider interface {
	Lexicon() ([]types.LexiconEntry, error)
}

// AliasProvider supplies the alias table.
type AliasProvider interface {
	Aliases() ([]types.AliasEntry, error)
}

// ModelProvider supplies NLP models. The NER model is required; the embedding
// model is optional and its absence is signaled with ErrModelUnavailable.
type ModelProvider interface {
	NER() (NERModel, error)
	Embedding() (EmbeddingModel, error)
}

// Static serves fixed in-memory tables and models. It is the default provider
// for the CLI and the injection point for fakes in tests.
type Static struct {
	LexiconEntries []types.LexiconEntry
	AliasEntries   []types.AliasEntry
	NERModel       NERModel
	EmbeddingImpl  EmbeddingModel
}

// NewStatic returns a Static provider with the built-in lexicon, alias table,
// and prose-backed NER model. No embedding model is configured by default.
func NewStatic() *Static {
	return &Static{
		LexiconEntries: DefaultLexicon(),
		AliasEntries:   DefaultAliases(),
		NERModel:       NewProseModel(),
	}
}

// Lexicon implements LexiconProvider.
func (s *Static) Lexicon() ([]types.LexiconEntry, error) {
	return s.LexiconEntries, nil
}

// Aliases implements AliasProvider.
func (s *Static) Aliases() ([]types.AliasEntry, error) {
	return s.AliasEntries, nil
}

// NER implements ModelProvider.
func (s *Static) NER() (NERModel, error) {
	if s.NERModel == nil {
		return nil, ErrModelUnavailable
	}
	return s.NERModel, nil
}

// Embedding implements ModelProvider.
func (s *Static) Embedding() (EmbeddingModel, error) {
	if s.EmbeddingImpl == nil {
		return nil, ErrModelUnavailable
	}
	return s.EmbeddingImpl, nil
}

// DefaultLexicon returns the built-in skill lexicon grouped by category.
func DefaultLexicon() []types.LexiconEntry {
	return []types.LexiconEntry{
		{Category: types.CategoryProgrammingLanguages, Skills: []string{
			"Python", "Go", "Java", "JavaScript", "TypeScript", "C++", "C#",
			"Ruby", "Rust", "Kotlin", "Swift", "PHP", "Scala", "Perl", "Bash",
		}},
		{Category: types.CategoryFrameworks, Skills: []string{
			"React", "Angular", "Vue", "Django", "Flask", "FastAPI", "Spring",
			"Spring Boot", "Node.js", "Rails", "Express", ".NET", "Laravel",
			"Next.js", "Svelte",
		}},
		{Category: types.CategoryDatabases, Skills: []string{
			"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQL", "Elasticsearch",
			"Cassandra", "SQLite", "Oracle", "DynamoDB", "Snowflake",
		}},
		{Category: types.CategoryCloudPlatforms, Skills: []string{
			"AWS", "Azure", "Google Cloud Platform", "Heroku", "DigitalOcean",
			"Cloudflare",
		}},
		{Category: types.CategoryDevOpsTools, Skills: []string{
			"Docker", "Kubernetes", "Terraform", "Jenkins", "Ansible", "Git",
			"GitHub Actions", "GitLab CI", "Prometheus", "Grafana", "Helm",
			"CircleCI", "Vault",
		}},
		{Category: types.CategoryDataTools, Skills: []string{
			"Spark", "Hadoop", "Kafka", "Airflow", "Pandas", "NumPy",
			"TensorFlow", "PyTorch", "scikit-learn", "dbt", "Tableau",
			"Power BI", "machine learning",
		}},
		{Category: types.CategorySoftSkills, Skills: []string{
			"stakeholder management", "project management", "communication",
			"leadership", "mentoring", "agile", "scrum", "problem solving",
			"cross-functional collaboration",
		}},
	}
}

// DefaultAliases returns the built-in alias table. Aliases are curated, so
// the alias strategy carries the same weight as lexicon matches.
func DefaultAliases() []types.AliasEntry {
	return []types.AliasEntry{
		{Alias: "K8s", CanonicalName: "Kubernetes", Category: types.CategoryDevOpsTools},
		{Alias: "JS", CanonicalName: "JavaScript", Category: types.CategoryProgrammingLanguages},
		{Alias: "TS", CanonicalName: "TypeScript", Category: types.CategoryProgrammingLanguages},
		{Alias: "Golang", CanonicalName: "Go", Category: types.CategoryProgrammingLanguages},
		{Alias: "GCP", CanonicalName: "Google Cloud Platform", Category: types.CategoryCloudPlatforms},
		{Alias: "Google Cloud", CanonicalName: "Google Cloud Platform", Category: types.CategoryCloudPlatforms},
		{Alias: "Postgres", CanonicalName: "PostgreSQL", Category: types.CategoryDatabases},
		{Alias: "Mongo", CanonicalName: "MongoDB", Category: types.CategoryDatabases},
		{Alias: "React.js", CanonicalName: "React", Category: types.CategoryFrameworks},
		{Alias: "ReactJS", CanonicalName: "React", Category: types.CategoryFrameworks},
		{Alias: "Vue.js", CanonicalName: "Vue", Category: types.CategoryFrameworks},
		{Alias: "NodeJS", CanonicalName: "Node.js", Category: types.CategoryFrameworks},
		{Alias: "Node", CanonicalName: "Node.js", Category: types.CategoryFrameworks},
		{Alias: "ES6", CanonicalName: "JavaScript", Category: types.CategoryProgrammingLanguages},
		{Alias: "ML", CanonicalName: "machine learning", Category: types.CategoryDataTools},
		{Alias: "Elastic", CanonicalName: "Elasticsearch", Category: types.CategoryDatabases},
		{Alias: "GH Actions", CanonicalName: "GitHub Actions", Category: types.CategoryDevOpsTools},
	}
}
