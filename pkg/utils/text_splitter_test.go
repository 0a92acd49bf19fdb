package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		chunkSize  int
		overlap    int
		wantChunks int
	}{
		{
			name:       "empty text",
			text:       "",
			chunkSize:  500,
			overlap:    50,
			wantChunks: 0,
		},
		{
			name:       "text shorter than chunk size",
			text:       "short medical note",
			chunkSize:  500,
			overlap:    50,
			wantChunks: 1,
		},
		{
			name:       "text exactly chunk size",
			text:       strings.Repeat("a", 500),
			chunkSize:  500,
			overlap:    50,
			wantChunks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitText(tt.text, tt.chunkSize, tt.overlap)
			if len(chunks) != tt.wantChunks {
				t.Errorf("chunk count = %d, want %d", len(chunks), tt.wantChunks)
			}
		})
	}
}

func TestSplitTextCoversWholeText(t *testing.T) {
	words := make([]string, 400)
	for i := range words {
		words[i] = "anatomy"
	}
	text := strings.Join(words, " ")

	chunks := SplitText(text, 500, 50)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// Every chunk must appear verbatim in the source
	for i, chunk := range chunks {
		if !strings.Contains(text, chunk) {
			t.Errorf("chunk %d is not a substring of the source", i)
		}
		if len([]rune(chunk)) > 500 {
			t.Errorf("chunk %d exceeds chunk size: %d runes", i, len([]rune(chunk)))
		}
	}

	// Concatenation of chunks (ignoring overlap duplication) must reach the end
	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(text, last) {
		t.Error("last chunk does not reach the end of the text")
	}
}

func TestSplitTextKeepsTailOnExactBoundary(t *testing.T) {
	// A window ending exactly at the text length must not retract to the
	// previous whitespace, or the text after it would never be indexed.
	text := strings.Repeat("a", 14) + " b"

	chunks := SplitText(text, 10, 4)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(text, last) {
		t.Errorf("tail lost: last chunk %q does not reach end of text", last)
	}
	if !strings.HasSuffix(last, "b") {
		t.Errorf("last chunk %q dropped the final word", last)
	}
}

func TestSplitTextCoversVaryingLengths(t *testing.T) {
	// Sweep lengths around the window boundaries so no off-by-one drops text.
	for length := 495; length <= 1005; length++ {
		text := strings.Repeat("a", length-2) + " z"
		chunks := SplitText(text, 500, 50)
		if len(chunks) == 0 {
			t.Fatalf("length %d: no chunks", length)
		}
		last := chunks[len(chunks)-1]
		if !strings.HasSuffix(text, last) {
			t.Fatalf("length %d: last chunk %q does not reach end of text", length, last)
		}
	}
}

func TestSplitTextDeterministic(t *testing.T) {
	text := strings.Repeat("the cardiovascular system circulates blood. ", 50)

	first := SplitText(text, 200, 20)
	second := SplitText(text, 200, 20)

	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestSplitTextOverlapCarriesContext(t *testing.T) {
	text := strings.Repeat("x", 120)

	chunks := SplitText(text, 50, 10)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	for i := 1; i < len(chunks); i++ {
		prevTail := chunks[i-1][len(chunks[i-1])-10:]
		if !strings.HasPrefix(chunks[i], prevTail) {
			t.Errorf("chunk %d does not start with the previous chunk's tail", i)
		}
	}
}
