// Package tui is the terminal front end of the checklist. It offers the same
// filtering, per-entry toggles, bulk toggles and save/load as the desktop
// window, driven by the keyboard.
package tui
