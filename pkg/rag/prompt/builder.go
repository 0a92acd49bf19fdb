package prompt

import (
	"strings"

	"askmedix-be/pkg/vectorstore"
)

// Builder assembles the retrieval-augmented prompt for answer generation
type Builder struct {
	systemPrompt string
	question     string
	passages     []vectorstore.ScoredChunk
}

// NewBuilder creates a new prompt builder
func NewBuilder(systemPrompt, question string, passages []vectorstore.ScoredChunk) *Builder {
	return &Builder{
		systemPrompt: systemPrompt,
		question:     question,
		passages:     passages,
	}
}

// Build creates the final prompt: system instruction, retrieved passages,
// then the user question
func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writeSystem(&prompt)
	b.writeReferenceMaterial(&prompt)
	b.writeUserQuestion(&prompt)

	return prompt.String()
}

func (b *Builder) writeSystem(prompt *strings.Builder) {
	if b.systemPrompt == "" {
		return
	}
	prompt.WriteString(b.systemPrompt)
	prompt.WriteString("\n\n")
}

func (b *Builder) writeReferenceMaterial(prompt *strings.Builder) {
	if len(b.passages) == 0 {
		return
	}
	prompt.WriteString("<reference_material>\n")
	for i, passage := range b.passages {
		if i > 0 {
			prompt.WriteString("\n---\n")
		}
		prompt.WriteString(passage.Text)
	}
	prompt.WriteString("\n</reference_material>\n\n")
}

func (b *Builder) writeUserQuestion(prompt *strings.Builder) {
	prompt.WriteString("<user_question>\n")
	prompt.WriteString(b.question)
	prompt.WriteString("\n</user_question>\n\n")
	prompt.WriteString("Answer the question using only the reference material above:")
}
