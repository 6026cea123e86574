package model

// Package model defines domain data structures shared across the app: catalog
// entries, the seen/caught flag pair and catalog metadata. Values are plain
// structs so every front end can render them directly.
