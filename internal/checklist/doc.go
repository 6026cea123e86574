package checklist

// Package checklist holds the per-entry seen/caught state, enforces that a
// caught creo is always seen, notifies subscribers about changes and reads and
// writes the save file. A Store is not safe for concurrent use; every front
// end drives it from its single UI goroutine.
