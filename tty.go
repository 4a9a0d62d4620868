package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/CatherineTower/air-ride-statistics/log"
)

// terminalWidth returns the width of the terminal w writes to, or 0 if w is
// not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func setupOsSignals(ctx context.Context, cancelCtx context.CancelFunc, logger *log.Logger) (cleanup func()) {
	// Catch ctrl+c signal and make it close the context instead of immediately
	// exiting. This lets the screen restore the terminal.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	cleanup = func() {
		signal.Stop(signalChan)
		cancelCtx()
	}

	go func() {
		select {
		case <-signalChan:
			logger.Print("Interrupted")
			cancelCtx()
		case <-ctx.Done():
		}
	}()

	return cleanup
}
