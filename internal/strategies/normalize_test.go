package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"title-cases lowercase", "python", "Python"},
		{"preserves acronyms", "AWS", "AWS"},
		{"preserves mixed case", "JavaScript", "JavaScript"},
		{"preserves inner punctuation", "node.js", "Node.js"},
		{"strips edge punctuation", "(Kubernetes),", "Kubernetes"},
		{"drops determiners", "the Python language", "Python Language"},
		{"drops glue words", "experience with Docker and Kubernetes", "Experience Docker Kubernetes"},
		{"multi word", "stakeholder management", "Stakeholder Management"},
		{"empty", "", ""},
		{"only stopwords", "with the and", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_TrailingPeriod(t *testing.T) {
	assert.Equal(t, "Docker", Normalize("Docker."))
	// Inner dots survive, so framework names keep their suffix.
	assert.Equal(t, "Vue.js", Normalize("Vue.js"))
}
