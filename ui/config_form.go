package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"scoreboard/internal/graphics"
	"scoreboard/internal/screen"
	"scoreboard/internal/side"
)

var (
	fontSizes     = []string{"5", "8", "10", "15", "20", "30", "40", "60", "75"}
	targetOptions = []string{"Both", "Home", "Away"}
)

// ContentForm holds the fields describing what goes on the previews.
type ContentForm struct {
	textEntry      *widget.Entry
	fontSizeSelect *widget.SelectEntry
	autoFitCheck   *widget.Check
	targetRadio    *widget.RadioGroup
	homeColorEntry *widget.Entry
	awayColorEntry *widget.Entry
	form           *fyne.Container
}

// NewContentForm creates the form with default values.
func NewContentForm() *ContentForm {
	cf := &ContentForm{}

	cf.textEntry = widget.NewMultiLineEntry()
	cf.textEntry.SetPlaceHolder("Text for the scoreboard")
	cf.textEntry.SetMinRowsVisible(3)

	cf.fontSizeSelect = widget.NewSelectEntry(fontSizes)
	cf.fontSizeSelect.SetText(strconv.Itoa(screen.DefaultFontSize))

	cf.autoFitCheck = widget.NewCheck("Fit text to screen", nil)

	cf.targetRadio = widget.NewRadioGroup(targetOptions, nil)
	cf.targetRadio.SetSelected("Both")
	cf.targetRadio.Horizontal = true

	defaults := graphics.DefaultTeamColors()
	cf.homeColorEntry = widget.NewEntry()
	cf.homeColorEntry.SetText(graphics.HexString(defaults.Home))
	cf.homeColorEntry.SetPlaceHolder("blue, #0000ff")

	cf.awayColorEntry = widget.NewEntry()
	cf.awayColorEntry.SetText(graphics.HexString(defaults.Away))
	cf.awayColorEntry.SetPlaceHolder("red, #ff0000")

	content := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Text", cf.textEntry),
			widget.NewFormItem("Font size", cf.fontSizeSelect),
			widget.NewFormItem("Sides", cf.targetRadio),
		),
		cf.autoFitCheck,
	)

	colors := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Home", cf.homeColorEntry),
			widget.NewFormItem("Away", cf.awayColorEntry),
		),
	)

	accordion := widget.NewAccordion(
		widget.NewAccordionItem("Content", content),
		widget.NewAccordionItem("Team Colors", colors),
	)

	// The content section is what the operator edits during a game.
	accordion.Open(0)

	cf.form = container.NewVBox(accordion)

	return cf
}

// Container returns the form's Fyne container.
func (cf *ContentForm) Container() *fyne.Container {
	return cf.form
}

// LoadPreferences restores form values from persistent preferences.
func (cf *ContentForm) LoadPreferences(prefs fyne.Preferences) {
	if v := prefs.String(prefText); v != "" {
		cf.textEntry.SetText(v)
	}
	if v := prefs.String(prefFontSize); v != "" {
		cf.fontSizeSelect.SetText(v)
	}
	cf.autoFitCheck.SetChecked(prefs.Bool(prefAutoFit))
	if v := prefs.String(prefTarget); v != "" {
		cf.targetRadio.SetSelected(v)
	}
	if v := prefs.String(prefHomeColor); v != "" {
		cf.homeColorEntry.SetText(v)
	}
	if v := prefs.String(prefAwayColor); v != "" {
		cf.awayColorEntry.SetText(v)
	}
}

// SavePreferences persists form values to preferences.
func (cf *ContentForm) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString(prefText, cf.textEntry.Text)
	prefs.SetString(prefFontSize, cf.fontSizeSelect.Text)
	prefs.SetBool(prefAutoFit, cf.autoFitCheck.Checked)
	prefs.SetString(prefTarget, cf.targetRadio.Selected)
	prefs.SetString(prefHomeColor, cf.homeColorEntry.Text)
	prefs.SetString(prefAwayColor, cf.awayColorEntry.Text)
}

// SetText replaces the text field.
func (cf *ContentForm) SetText(text string) { cf.textEntry.SetText(text) }

// SetFontSize replaces the font size field.
func (cf *ContentForm) SetFontSize(size float64) {
	cf.fontSizeSelect.SetText(strconv.FormatFloat(size, 'f', -1, 64))
}

// SetAutoFit sets the auto-fit check.
func (cf *ContentForm) SetAutoFit(on bool) { cf.autoFitCheck.SetChecked(on) }

// SetColors replaces the team color fields.
func (cf *ContentForm) SetColors(home, away string) {
	cf.homeColorEntry.SetText(home)
	cf.awayColorEntry.SetText(away)
}

// Text returns the text to show.
func (cf *ContentForm) Text() string { return cf.textEntry.Text }

// FontSize returns the logical font size, falling back to the default for
// invalid input.
func (cf *ContentForm) FontSize() float64 {
	return parseFontSize(cf.fontSizeSelect.Text, screen.DefaultFontSize)
}

// AutoFit reports whether text is fitted to the side.
func (cf *ContentForm) AutoFit() bool { return cf.autoFitCheck.Checked }

// Target returns the sides edits apply to.
func (cf *ContentForm) Target() side.Set {
	switch cf.targetRadio.Selected {
	case "Home":
		return side.Home
	case "Away":
		return side.Away
	default:
		// The error screen follows the team sides.
		return side.Home | side.Away | side.Error
	}
}

// TeamColors parses the color fields.
func (cf *ContentForm) TeamColors() (graphics.TeamColors, error) {
	home, err := parseColor(cf.homeColorEntry.Text, "home color")
	if err != nil {
		return graphics.TeamColors{}, err
	}
	away, err := parseColor(cf.awayColorEntry.Text, "away color")
	if err != nil {
		return graphics.TeamColors{}, err
	}
	return graphics.TeamColors{Home: home, Away: away}, nil
}
