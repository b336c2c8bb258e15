package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - sky theme defaults, replaced by ApplyTheme
var (
	// Primary colors
	Primary   = lipgloss.Color("#38BDF8") // Sky
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Accent    = lipgloss.Color("#0EA5E9")

	// Status colors
	Success = lipgloss.Color("#10B981")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")
	Info    = lipgloss.Color("#3B82F6")

	// Text colors
	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")
	TextSubtle    = lipgloss.Color("#4B5563")

	// Background colors
	BgPrimary   = lipgloss.Color("#0C4A6E")
	BgSecondary = lipgloss.Color("#FFFFFF")
	BgTertiary  = lipgloss.Color("#E0F2FE")

	// Card colors
	CardBg           = lipgloss.Color("#FFFFFF")
	CardTitleColor   = lipgloss.Color("#172554") // Blue 950
	CardTextColor    = lipgloss.Color("#4B5563")
	CardBorder       = lipgloss.Color("#BAE6FD")
	CardBorderActive = lipgloss.Color("#0284C7")

	ButtonHoverColor      = lipgloss.Color("#0284C7")
	ButtonDimColor        = lipgloss.Color("#BAE6FD") // submit button while fields are empty
	ToastSuccessTextColor = lipgloss.Color("#000000")
	ToastErrorTextColor   = lipgloss.Color("#FFFFFF")

	// Glamour style used by the note viewer
	CurrentMarkdownTheme = "light"
)

// DashedBorder outlines the add tile.
var DashedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
}

// Styles are rebuilt from the color variables by rebuildStyles.
var (
	// Text styles
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	KeyHint lipgloss.Style
	Logo    lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	// Cards
	Card           lipgloss.Style
	CardFocused    lipgloss.Style
	CardTitle      lipgloss.Style
	CardBody       lipgloss.Style
	CardDate       lipgloss.Style
	CardRule       lipgloss.Style
	CardMenuToggle lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemHover  lipgloss.Style
	AddTile        lipgloss.Style
	AddTileFocused lipgloss.Style

	// Chrome
	Header lipgloss.Style
	Footer lipgloss.Style

	// Modals
	ModalTitle      lipgloss.Style
	ModalLabel      lipgloss.Style
	CloseGlyph      lipgloss.Style
	CloseGlyphHover lipgloss.Style

	// Buttons
	Button              lipgloss.Style
	ButtonFocused       lipgloss.Style
	ButtonHover         lipgloss.Style
	ButtonDim           lipgloss.Style
	ButtonDanger        lipgloss.Style
	ButtonDangerFocused lipgloss.Style
	ButtonDangerHover   lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles recreates all lipgloss styles with current colors
func rebuildStyles() {
	// Text styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Subtle = lipgloss.NewStyle().
		Foreground(TextSubtle)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	Logo = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	// Toast styles for status messages
	ToastSuccess = lipgloss.NewStyle().
		Background(Success).
		Foreground(ToastSuccessTextColor).
		Bold(true).
		Padding(0, 1)

	ToastError = lipgloss.NewStyle().
		Background(Error).
		Foreground(ToastErrorTextColor).
		Bold(true).
		Padding(0, 1)

	// Card styles
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CardBorder).
		Background(CardBg).
		Padding(0, 1)

	CardFocused = Card.
		BorderForeground(CardBorderActive)

	CardTitle = lipgloss.NewStyle().
		Foreground(CardTitleColor).
		Background(CardBg).
		Bold(true)

	CardBody = lipgloss.NewStyle().
		Foreground(CardTextColor).
		Background(CardBg)

	CardDate = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(CardBg)

	CardRule = lipgloss.NewStyle().
		Foreground(CardBorder).
		Background(CardBg)

	// "..." menu toggle
	CardMenuToggle = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(CardBg).
		Bold(true)

	MenuItem = lipgloss.NewStyle().
		Foreground(CardTitleColor).
		Background(CardBg).
		Padding(0, 1)

	MenuItemHover = lipgloss.NewStyle().
		Foreground(CardBg).
		Background(Primary).
		Padding(0, 1)

	AddTile = lipgloss.NewStyle().
		Border(DashedBorder).
		BorderForeground(CardBorder).
		Background(CardBg).
		Foreground(Primary).
		Align(lipgloss.Center, lipgloss.Center)

	AddTileFocused = AddTile.
		BorderForeground(CardBorderActive).
		Bold(true)

	// Footer and header
	Header = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgPrimary).
		Bold(true).
		Padding(0, 1)

	Footer = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Modal styles
	ModalTitle = lipgloss.NewStyle().
		Foreground(CardTitleColor).
		Bold(true).
		MarginBottom(1)

	ModalLabel = lipgloss.NewStyle().
		Foreground(CardTitleColor)

	CloseGlyph = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	CloseGlyphHover = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	// Button styles
	Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary).
		Padding(0, 2).
		Bold(true)

	ButtonHover = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(ButtonHoverColor).
		Padding(0, 2)

	// Submit button while the draft is incomplete; still clickable
	ButtonDim = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(ButtonDimColor).
		Padding(0, 2)

	ButtonDanger = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FCA5A5")).
		Background(lipgloss.Color("#7F1D1D")).
		Padding(0, 2)

	ButtonDangerFocused = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#DC2626")).
		Padding(0, 2).
		Bold(true)

	ButtonDangerHover = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#B91C1C")).
		Padding(0, 2)
}
