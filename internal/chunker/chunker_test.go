package chunker

import (
	"strings"
	"testing"
)

func TestSplit_SmallTextFitsOneChunk(t *testing.T) {
	text := strings.Repeat("word ", 200)
	chunks := Split(text, Config{ChunkSize: 1500})

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Error("expected text that fits to be returned unchanged")
	}
}

func TestSplit_LargeTextRequiresSplitting(t *testing.T) {
	// ~3000 words -> ~3990 tokens at 1.33 tokens/word.
	largeText := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 300)

	cfg := Config{ChunkSize: 500}
	chunks := Split(largeText, cfg)

	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks for large text, got %d", len(chunks))
	}

	// Sentence boundaries may overflow slightly; allow 2x as a ceiling.
	for i, c := range chunks {
		tokens := EstimateTokens(c)
		if tokens > cfg.ChunkSize*2 {
			t.Errorf("chunk %d: %d tokens exceeds 2x target %d", i, tokens, cfg.ChunkSize)
		}
	}
}

func TestSplit_NoOverlapKeepsWordCount(t *testing.T) {
	paras := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		paras = append(paras, strings.Repeat("donor ", 50))
	}
	text := strings.Join(paras, "\n\n")

	chunks := Split(text, Config{ChunkSize: 200})
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	total := 0
	for _, c := range chunks {
		total += len(strings.Fields(c))
	}
	if want := len(strings.Fields(text)); total != want {
		t.Errorf("expected %d words across chunks without overlap, got %d", want, total)
	}
}

func TestSplit_OverlapRepeatsTail(t *testing.T) {
	paras := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		paras = append(paras, strings.Repeat("gift ", 100))
	}
	text := strings.Join(paras, "\n\n")

	withOverlap := Split(text, Config{ChunkSize: 300, ChunkOverlap: 50})
	without := Split(text, Config{ChunkSize: 300})

	count := func(chunks []string) int {
		n := 0
		for _, c := range chunks {
			n += len(strings.Fields(c))
		}
		return n
	}
	if count(withOverlap) <= count(without) {
		t.Errorf("expected overlap to repeat words: %d vs %d", count(withOverlap), count(without))
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	if chunks := Split("", DefaultConfig()); len(chunks) != 0 {
		t.Errorf("expected 0 chunks, got %d", len(chunks))
	}
	if chunks := Split(" \n\n ", DefaultConfig()); len(chunks) != 0 {
		t.Errorf("expected 0 chunks for whitespace, got %d", len(chunks))
	}
}

func TestSplit_ZeroConfigUsesDefaults(t *testing.T) {
	chunks := Split(strings.Repeat("word ", 200), Config{})
	if len(chunks) != 1 {
		t.Errorf("expected 1 chunk with default size, got %d", len(chunks))
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{strings.Repeat("w ", 100), 133},
	}
	for _, tt := range tests {
		if got := EstimateTokens(tt.in); got != tt.want {
			t.Errorf("EstimateTokens(%q): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}
