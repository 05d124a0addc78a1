// Package tui renders a live, terminal view of a track replay using Bubble Tea.
//
// WatchModel plays the samples of a track back on a timer, optionally sped
// up, and shows the recommended following distance as a gauge. The model
// never touches the terminal itself, so Update and View can be driven
// directly from tests.
package tui
