// Package ui provides the composition primitives the drawer builds on.
//
// Core abstractions:
//   - View: a screen or major UI region with its own model, update, view (Elm-style)
//   - Panel: a bounded region within a layout that hosts a View
//   - FocusManager: tracks and rotates keyboard focus across panels
//
// The drawer in internal/drawer hosts two Views (menu and body) and
// publishes them as Panels; FocusManager decides which one receives
// keyboard input as the drawer opens and closes.
package ui
