//go:build !debuglayout

package slider

const debugLayout = false
