package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Black    = lipgloss.Color("#111111")
	Gray     = lipgloss.Color("#3e3e3e")
	GrayDark = lipgloss.Color("#2f3030")
	White    = lipgloss.Color("#cccccc")

	Red = lipgloss.Color("#B8383B")
	Blu = lipgloss.Color("#5885A2")

	ColourStrange = lipgloss.Color("#cf6a32")
	ColourGenuine = lipgloss.Color("#4d7455")
	ColourUnusual = lipgloss.Color("#8650ac")
	ColourVintage = lipgloss.Color("#476291")

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	ContainerBorder      = lipgloss.RoundedBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray).Padding(0, 1)
	ContainerStyleActive = ContainerStyle.BorderForeground(Blu)

	SliderLabel         = lipgloss.NewStyle().Foreground(White).Bold(true)
	SliderLabelDisabled = lipgloss.NewStyle().Foreground(Gray)
	SliderValue         = lipgloss.NewStyle().Foreground(ColourGenuine).PaddingLeft(1)

	// Canvas cells, indexed by emphasis.
	TrackColours  = [4]lipgloss.Color{Gray, White, White, GrayDark}
	FilledColours = [4]lipgloss.Color{Blu, Accent, Accent, Gray}
	ThumbColours  = [4]lipgloss.Color{Blu, Accent, ColourStrange, Gray}
	HaloColour    = Accent
	MarkerColour  = ColourUnusual
	OutlineColour = Red

	TabContainer = lipgloss.NewStyle().Align(lipgloss.Center)
	TabsInactive = lipgloss.NewStyle().Bold(true).
			Foreground(ColourVintage).PaddingLeft(2).PaddingRight(2)
	TabsActive = lipgloss.NewStyle().
			Foreground(ColourUnusual).PaddingLeft(2).PaddingRight(2)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(ColourGenuine).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusSlider  = lipgloss.NewStyle().Foreground(ColourStrange).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusValue   = lipgloss.NewStyle().Foreground(ColourGenuine).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusState   = lipgloss.NewStyle().Foreground(ColourVintage).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center)
	StatusVersion = lipgloss.NewStyle().Foreground(ColourGenuine).Bold(true).Align(lipgloss.Center)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	HelpBox = lipgloss.NewStyle().Padding(1, 3)
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := max(0, width-lipgloss.Width(value))

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "┤"+title+"├", border.Top)

	return border
}
