package prompt

import (
	"strings"
	"testing"

	"askmedix-be/pkg/vectorstore"
)

func TestBuildIncludesAllSections(t *testing.T) {
	passages := []vectorstore.ScoredChunk{
		{Text: "Aspirin reduces fever.", Score: 0.92},
		{Text: "Ibuprofen is an NSAID.", Score: 0.87},
	}

	out := NewBuilder("You are a medical assistant.", "What reduces fever?", passages).Build()

	if !strings.HasPrefix(out, "You are a medical assistant.") {
		t.Error("system prompt must come first")
	}
	for _, p := range passages {
		if !strings.Contains(out, p.Text) {
			t.Errorf("missing passage %q", p.Text)
		}
	}
	if !strings.Contains(out, "What reduces fever?") {
		t.Error("missing user question")
	}

	// Passages must keep retrieval order
	if strings.Index(out, passages[0].Text) > strings.Index(out, passages[1].Text) {
		t.Error("passages are out of order")
	}

	// Question comes after the reference material
	if strings.Index(out, "</reference_material>") > strings.Index(out, "<user_question>") {
		t.Error("question must follow the reference material")
	}
}

func TestBuildWithoutPassages(t *testing.T) {
	out := NewBuilder("system", "question", nil).Build()

	if strings.Contains(out, "<reference_material>") {
		t.Error("empty retrieval must not emit a reference block")
	}
	if !strings.Contains(out, "question") {
		t.Error("question must still be present")
	}
}
