// Package glaze is the window/event-state synchronization layer of a
// retained-mode GUI framework.
//
// The heart of the module is window.State, a per-window reconciliation
// engine that keeps physical geometry, logical geometry, DPI scale
// factors and a viewport version counter consistent across platform
// events and application-driven changes. Platform events feed
// State.Update; once per frame, State.Synchronize reconciles the cached
// title, scale factor and theme against the application.
//
// The engine is a pure state machine polled by its host: backends
// (backend/cellwin is the terminal-cell reference) translate native
// events into the window event union and implement the window.Window
// collaborator, while the host application implements
// window.Application. See cmd/glaze-sim for a complete driver loop.
package glaze
