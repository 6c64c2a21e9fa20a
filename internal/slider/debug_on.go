//go:build debuglayout

package slider

// Built with -tags debuglayout the widget bounding box is outlined on every render.
const debugLayout = true
