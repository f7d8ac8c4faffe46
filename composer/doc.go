// Package composer holds the editable state of a message composer: a
// capacity-bounded buffer, its wrapped layout and a cursor kept consistent
// across every edit and motion.
//
// A Composer is owned by a single goroutine (the UI loop). Every operation
// runs to completion and re-lays out the whole text when it changes.
package composer
