// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/glaze-sim/main.go
// Summary: Demo host driving the window state engine over the cellwin
//          backend.
// Usage: glaze-sim [-log]. Keys: q quits, t flips the theme, +/- zooms
//        the application scale, F12 toggles the debug overlay.

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/framegrace/glaze"
	"github.com/framegrace/glaze/backend/cellwin"
	"github.com/framegrace/glaze/core"
	"github.com/framegrace/glaze/window"
)

// demoApp is the application collaborator for the simulation: it owns
// the authoritative title, zoom and theme the engine reconciles against.
type demoApp struct {
	zoom float64
	dark bool
}

func (a *demoApp) Title() string {
	return fmt.Sprintf("glaze-sim (zoom %.2f)", a.zoom)
}

func (a *demoApp) ScaleFactor() float64 { return a.zoom }

func (a *demoApp) Theme() core.Theme {
	if a.dark {
		return core.Dark
	}
	return core.Light
}

func (a *demoApp) Style(theme core.Theme) core.Appearance {
	return theme.DefaultStyle()
}

func main() {
	logging := flag.Bool("log", false, "enable debug logging to stderr")
	flag.Parse()

	if *logging {
		glaze.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	backend, err := cellwin.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "glaze-sim: %v\n", err)
		os.Exit(1)
	}
	defer backend.Fini()

	app := &demoApp{zoom: 1.0}
	overlay := &glaze.OverlayDebug{}
	state := window.NewState(app, backend, window.WithDebug(overlay))

	run(app, backend, state, overlay)
}

func run(app *demoApp, backend *cellwin.Backend, state *window.State, overlay *glaze.OverlayDebug) {
	events := make(chan window.Event, 16)
	go func() {
		for {
			ev := backend.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	draw(backend, state, overlay)

	for ev := range events {
		if key, ok := ev.(*window.EventKey); ok && key.Pressed {
			switch {
			case key.Rune == 'q':
				return
			case key.Rune == 't':
				app.dark = !app.dark
			case key.Rune == '+':
				app.zoom += 0.25
			case key.Rune == '-':
				if app.zoom > 0.25 {
					app.zoom -= 0.25
				}
			}
		}

		state.Update(backend, ev)
		state.Synchronize(app, backend)

		// Every event moves something this host displays (cursor,
		// modifiers, overlay), so repaint unconditionally. A renderer
		// that only cares about geometry would compare
		// state.ViewportVersion() against the last drawn version.
		draw(backend, state, overlay)
	}
}

// draw paints the frame defaults plus a status line describing the
// engine state.
func draw(backend *cellwin.Backend, state *window.State, overlay *glaze.OverlayDebug) {
	screen := backend.Screen()
	style := styleFor(state.BackgroundColor(), state.TextColor())

	screen.Fill(' ', style)

	phys := state.PhysicalSize()
	logical := state.LogicalSize()
	status := fmt.Sprintf(
		" %s │ physical %d×%d │ logical %.0f×%.0f │ scale %.2f │ v%d │ mods %04b",
		themeName(state.Theme()),
		phys.Width, phys.Height,
		logical.Width, logical.Height,
		state.ScaleFactor(),
		state.ViewportVersion(),
		state.Modifiers(),
	)
	if pos, ok := state.Cursor().Position(); ok {
		status += fmt.Sprintf(" │ cursor %.0f,%.0f", pos.X, pos.Y)
	}
	if overlay.Enabled() {
		status += " │ DEBUG"
	}

	cols, _ := screen.Size()
	putLine(screen, 0, runewidth.Truncate(status, cols, "…"), style)
	screen.Show()
}

func putLine(screen tcell.Screen, y int, line string, style tcell.Style) {
	x := 0
	for _, r := range line {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// styleFor converts the appearance colors into a tcell style.
func styleFor(background, text core.Color) tcell.Style {
	return tcell.StyleDefault.
		Background(toTcell(background)).
		Foreground(toTcell(text))
}

func toTcell(c core.Color) tcell.Color {
	rgba := c.NRGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func themeName(theme core.Theme) string {
	if s, ok := theme.(fmt.Stringer); ok {
		return s.String()
	}
	return "custom"
}
