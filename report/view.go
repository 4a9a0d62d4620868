package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

var (
	titleStyle = tcell.StyleDefault.Bold(true)
	rowStyle   = tcell.StyleDefault
	totalStyle = tcell.StyleDefault.Bold(true)
	hintStyle  = tcell.StyleDefault.Dim(true)
)

// View shows tallies on a terminal screen, one at a time.
type View struct {
	screen  tcell.Screen
	tallies []*Tally
	current int

	// First row of the current tally shown on screen.
	scroll int
}

// OpenScreen creates and initializes a screen on the controlling terminal.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	return screen, nil
}

// NewView creates a view over an initialized screen. tallies must not be
// empty.
func NewView(screen tcell.Screen, tallies []*Tally) *View {
	return &View{screen: screen, tallies: tallies}
}

// Current returns the tally being shown.
func (v *View) Current() *Tally {
	return v.tallies[v.current]
}

// Run handles input until the user quits or ctx is done. The screen is
// finalized before Run returns.
func (v *View) Run(ctx context.Context) error {
	defer func() {
		// Restore the terminal before re-raising, otherwise the panic
		// message is lost in raw mode.
		maybePanic := recover()
		v.screen.Fini()
		if maybePanic != nil {
			panic(maybePanic)
		}
	}()

	quit := make(chan struct{})
	go v.loop(quit)

	select {
	case <-quit:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (v *View) loop(quit chan<- struct{}) {
	for {
		v.Draw()
		v.screen.Show()

		switch ev := v.screen.PollEvent().(type) {
		case nil:
			// The screen was finalized.
			return
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				close(quit)
				return
			case ev.Key() == tcell.KeyTab:
				v.current = (v.current + 1) % len(v.tallies)
				v.scroll = 0
			case ev.Key() == tcell.KeyBacktab:
				v.current = (v.current + len(v.tallies) - 1) % len(v.tallies)
				v.scroll = 0
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				v.scrollBy(1)
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				v.scrollBy(-1)
			}
		}
	}
}

func (v *View) scrollBy(n int) {
	_, height := v.screen.Size()
	maxScroll := max(len(v.Current().Rows)-v.bodyHeight(height), 0)
	v.scroll = min(max(v.scroll+n, 0), maxScroll)
}

// bodyHeight is the number of rows left for tally rows after the title,
// total and hint lines.
func (v *View) bodyHeight(height int) int {
	return max(height-3, 0)
}

// Draw renders the current tally to the screen buffer without showing it.
func (v *View) Draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	t := v.Current()

	countWidth := len(strconv.Itoa(t.Total))
	labelWidth := max(width-countWidth-len(columnGap), 1)

	putString(v.screen, 0, 0, fmt.Sprintf("%s (%d of %d)", title(t.Dimension.String()), v.current+1, len(v.tallies)), titleStyle)

	y := 1
	end := min(v.scroll+v.bodyHeight(height), len(t.Rows))
	for _, row := range t.Rows[v.scroll:end] {
		putRow(v.screen, y, row.Label, row.Count, labelWidth, countWidth, rowStyle)
		y++
	}
	putRow(v.screen, y, "Total", t.Total, labelWidth, countWidth, totalStyle)

	putString(v.screen, 0, height-1, "Tab next  Shift-Tab previous  j/k scroll  q quit", hintStyle)
}

func putRow(screen tcell.Screen, y int, label string, count, labelWidth, countWidth int, style tcell.Style) {
	putString(screen, 0, y, truncate(label, labelWidth), style)
	putString(screen, labelWidth+len(columnGap), y, fmt.Sprintf("%*d", countWidth, count), style)
}

// putString draws s one grapheme cluster at a time starting at x and returns
// the column after the last cluster.
func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += gr.Width()
	}
	return x
}

// truncate cuts s to at most width cells.
func truncate(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var (
		cut   int
		used  int
		state = -1
		rest  = s
	)
	for len(rest) > 0 {
		var (
			cluster string
			w       int
		)
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width {
			break
		}
		used += w
		cut += len(cluster)
	}
	return s[:cut]
}
