package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CatherineTower/air-ride-statistics/utils"
)

const columnGap = "  "

// WritePlain writes one "<label>: <count>" line per row.
func WritePlain(w io.Writer, t *Tally) error {
	var b strings.Builder
	for _, row := range t.Rows {
		fmt.Fprintf(&b, "%s: %d\n", row.Label, row.Count)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTable writes t as an aligned two column table followed by a total.
// If width is positive, labels are wrapped so that no line is wider than
// width cells.
func WriteTable(w io.Writer, t *Tally, width int) error {
	header := title(t.Dimension.String())
	total := "Total"

	countWidth := max(len("Count"), len(strconv.Itoa(t.Total)))
	labelWidth := max(utils.Width(header), utils.Width(total))
	for _, row := range t.Rows {
		labelWidth = max(labelWidth, utils.Width(row.Label))
	}
	if width > 0 && labelWidth+len(columnGap)+countWidth > width {
		labelWidth = max(width-len(columnGap)-countWidth, 1)
	}

	var b strings.Builder
	writeRow := func(label, count string) {
		lines := utils.WordWrap(label, labelWidth)
		for i, line := range lines {
			if i > 0 {
				count = ""
			}
			b.WriteString(strings.TrimRight(utils.PadRight(line, labelWidth)+columnGap+fmt.Sprintf("%*s", countWidth, count), " "))
			b.WriteByte('\n')
		}
	}

	writeRow(header, "Count")
	b.WriteString(strings.Repeat("-", labelWidth+len(columnGap)+countWidth))
	b.WriteByte('\n')
	for _, row := range t.Rows {
		writeRow(row.Label, strconv.Itoa(row.Count))
	}
	writeRow(total, strconv.Itoa(t.Total))

	_, err := io.WriteString(w, b.String())
	return err
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
