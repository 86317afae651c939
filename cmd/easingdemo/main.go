// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program listing easing curve previews. Clicking a curve
// animates a square across the window along it.

import (
	"flag"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/unit"

	"go.uber.org/zap"
)

var (
	duration = flag.Duration("duration", time.Second, "length of an animation")
	debug    = flag.Bool("debug", false, "enable development logging")
)

func main() {
	flag.Parse()
	logger, err := newLogger(*debug)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Info("starting", zap.Duration("duration", *duration))

	go func() {
		w := app.NewWindow(
			app.Title("Easing curves"),
			app.Size(unit.Dp(640), unit.Dp(600)),
		)
		u, err := newUI(logger, *duration)
		if err != nil {
			logger.Fatal("build ui", zap.Error(err))
		}
		if err := u.run(w); err != nil {
			logger.Fatal("window", zap.Error(err))
		}
		logger.Info("window closed")
		os.Exit(0)
	}()
	app.Main()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
