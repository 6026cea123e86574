package ui

// Package ui provides the Fyne desktop front end: the checklist window, entry
// rows, menus, dialogs, localization and theme. Widgets read state from a
// checklist.Store and re-render on its change notifications.
