// Package editor provides a Bubble Tea message composer backed by the
// composer package.
//
// The package is responsible for key dispatch, viewport behavior, caret
// rendering over wrapped rows, and host integration hooks (submit messages
// and change events). Layout and cursor rules live in composer and layout.
package editor
