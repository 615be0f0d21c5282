package domain

import (
	"strings"
	"unicode/utf8"
)

// chunk is one outbound piece. joinsLine is set when the next chunk continues
// the same source line (a hard split), so no line break sits between them.
type chunk struct {
	text      string
	joinsLine bool
}

// SplitMessage breaks text into pieces whose UTF-8 length is at most maxBytes.
// Line boundaries are preferred; a single line longer than maxBytes is cut at
// rune boundaries.
func SplitMessage(text string, maxBytes int) []string {
	chunks := splitChunks(text, maxBytes)
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, c.text)
	}
	return out
}

func splitChunks(text string, maxBytes int) []chunk {
	if len(text) <= maxBytes {
		return []chunk{{text: text}}
	}

	var (
		chunks  []chunk
		current strings.Builder
		started bool
	)

	flush := func() {
		chunks = append(chunks, chunk{text: current.String()})
		current.Reset()
		started = false
	}

	for _, line := range strings.Split(text, "\n") {
		size := len(line)
		if started {
			size += current.Len() + 1
		}

		if size <= maxBytes {
			if started {
				current.WriteByte('\n')
			}
			current.WriteString(line)
			started = true
			continue
		}

		if started {
			flush()
		}

		if len(line) > maxBytes {
			pieces := hardSplitLine(line, maxBytes)
			for i, piece := range pieces {
				chunks = append(chunks, chunk{text: piece, joinsLine: i < len(pieces)-1})
			}
			continue
		}

		current.WriteString(line)
		started = true
	}

	if started {
		flush()
	}

	return chunks
}

// hardSplitLine cuts line into maximal pieces of at most maxBytes without
// separating the bytes of one rune. A rune wider than maxBytes is emitted
// alone. It never returns an empty piece.
func hardSplitLine(line string, maxBytes int) []string {
	var pieces []string
	start := 0
	for i := 0; i < len(line); {
		_, width := utf8.DecodeRuneInString(line[i:])
		if i > start && i+width-start > maxBytes {
			pieces = append(pieces, line[start:i])
			start = i
		}
		i += width
	}
	if start < len(line) {
		pieces = append(pieces, line[start:])
	}
	return pieces
}
