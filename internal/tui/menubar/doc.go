// Package menubar implements a horizontally scrollable menu bar for Bubble
// Tea applications.
//
// The bar shows a strip of items inside a viewport narrower than the strip,
// with previous/next arrow controls at the edges. Navigation moves the strip
// by a step (half the viewport, or a fixed column count), clamped at the
// content bounds. Key behaviors:
//   - Arrow keys, arrow-zone clicks, wheel and drag gestures all navigate
//   - Wheel/drag direction is inverted relative to the revealed content
//   - Window resizes are debounced; only the last of a burst triggers layout
//   - Offset changes animate linearly, or snap when animation is disabled
//   - Every layout pass emits a LayoutMsg for external observers
//
// A bar that fits its viewport degrades to a static strip with both controls
// hidden; no input can move it. Missing items or a zero-width terminal are
// not errors.
package menubar
