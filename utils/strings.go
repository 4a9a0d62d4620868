package utils

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// PadRight appends spaces to s until it is width cells wide. Strings that are
// already wider are returned unchanged.
func PadRight(s string, width int) string {
	if w := Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// WordWrap splits text into lines at most width cells wide. Lines are broken
// at Unicode line break opportunities; a word wider than width on its own is
// split between grapheme clusters. Mandatory breaks (newlines) are honored.
// A width of 0 or less disables wrapping.
func WordWrap(text string, width int) (lines []string) {
	if width <= 0 {
		return []string{text}
	}

	var (
		line      strings.Builder
		lineWidth int
		state     = -1
	)
	flush := func() {
		lines = append(lines, strings.TrimRight(line.String(), " \r\n"))
		line.Reset()
		lineWidth = 0
	}

	for len(text) > 0 {
		var (
			segment   string
			mustBreak bool
		)
		segment, text, mustBreak, state = uniseg.FirstLineSegmentInString(text, state)

		// Trailing spaces may hang past the edge.
		segWidth := Width(strings.TrimRight(segment, " \r\n"))
		if lineWidth > 0 && lineWidth+segWidth > width {
			flush()
		}
		if segWidth > width {
			segment = splitClusters(segment, width, &lines)
		}

		line.WriteString(segment)
		lineWidth += Width(segment)

		if mustBreak && len(text) > 0 {
			flush()
		}
	}

	if line.Len() > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// splitClusters appends width-sized pieces of s to lines and returns the
// remainder, which is narrower than width.
func splitClusters(s string, width int, lines *[]string) string {
	var (
		chunk      strings.Builder
		chunkWidth int
		state      = -1
	)

	for len(s) > 0 {
		var (
			cluster string
			w       int
		)
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if chunkWidth > 0 && chunkWidth+w > width {
			*lines = append(*lines, chunk.String())
			chunk.Reset()
			chunkWidth = 0
		}
		chunk.WriteString(cluster)
		chunkWidth += w
	}
	return chunk.String()
}
