package model

// Page is a complete standalone screen that occupies everything except the footer.
type Page int

const (
	PageMain Page = iota
	PageHelp
)

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	Page Page
	// Focus is the index of the slider receiving keyboard input.
	Focus  int
	Height int
	Width  int
}
