package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"scoreboard/internal/format"
	"scoreboard/internal/side"
)

// ScorePanel keeps the team names and scores and writes them onto their
// sides of the previews.
type ScorePanel struct {
	s    *session
	form *ContentForm

	home, away int

	homeName  *widget.Entry
	awayName  *widget.Entry
	homeLabel *widget.Label
	awayLabel *widget.Label
	container *fyne.Container
}

// NewScorePanel creates the score controls.
func NewScorePanel(s *session, form *ContentForm) *ScorePanel {
	sp := &ScorePanel{s: s, form: form}

	sp.homeName = widget.NewEntry()
	sp.homeName.SetPlaceHolder("Home")
	sp.awayName = widget.NewEntry()
	sp.awayName.SetPlaceHolder("Away")
	sp.homeLabel = widget.NewLabel("0")
	sp.awayLabel = widget.NewLabel("0")

	row := func(name *widget.Entry, score *widget.Label, team side.Set) *fyne.Container {
		return container.NewBorder(nil, nil, nil,
			container.NewHBox(
				widget.NewButton("-", func() { sp.Add(team, -1) }),
				score,
				widget.NewButton("+", func() { sp.Add(team, 1) }),
			),
			name,
		)
	}

	sp.container = container.NewVBox(
		widget.NewLabelWithStyle("Score", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		row(sp.homeName, sp.homeLabel, side.Home),
		row(sp.awayName, sp.awayLabel, side.Away),
		container.NewHBox(
			widget.NewButton("Show Score", sp.Show),
			widget.NewButton("Reset", sp.Reset),
		),
	)
	return sp
}

// Container returns the score controls.
func (sp *ScorePanel) Container() *fyne.Container {
	return sp.container
}

// LoadPreferences restores the team names.
func (sp *ScorePanel) LoadPreferences(prefs fyne.Preferences) {
	sp.homeName.SetText(prefs.String(prefHomeName))
	sp.awayName.SetText(prefs.String(prefAwayName))
}

// SavePreferences persists the team names.
func (sp *ScorePanel) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString(prefHomeName, sp.homeName.Text)
	prefs.SetString(prefAwayName, sp.awayName.Text)
}

// SetNames replaces the team names.
func (sp *ScorePanel) SetNames(home, away string) {
	sp.homeName.SetText(home)
	sp.awayName.SetText(away)
}

// Score returns a team's score.
func (sp *ScorePanel) Score(team side.Set) int {
	switch team {
	case side.Home:
		return sp.home
	case side.Away:
		return sp.away
	}
	return 0
}

// Add changes a team's score by delta. Scores do not go below zero.
func (sp *ScorePanel) Add(team side.Set, delta int) {
	switch team {
	case side.Home:
		sp.home = max(sp.home+delta, 0)
	case side.Away:
		sp.away = max(sp.away+delta, 0)
	}
	sp.homeLabel.SetText(strconv.Itoa(sp.home))
	sp.awayLabel.SetText(strconv.Itoa(sp.away))
}

// Reset sets both scores to zero.
func (sp *ScorePanel) Reset() {
	sp.Add(side.Home, -sp.home)
	sp.Add(side.Away, -sp.away)
}

// Text returns what a team's side shows.
func (sp *ScorePanel) Text(team side.Set) string {
	name := sp.homeName.Text
	if team == side.Away {
		name = sp.awayName.Text
	}
	return format.FormatScore(name, sp.Score(team))
}

// Show writes each team's score onto its side of every preview.
func (sp *ScorePanel) Show() {
	size, autoFit := sp.form.FontSize(), sp.form.AutoFit()
	for _, pv := range sp.s.panel.Previews() {
		t := pv.Text()
		for _, team := range side.Both.Singles() {
			t.SetText(sp.Text(team), size, team)
		}
		t.SetAutoFit(autoFit, side.Both)
		pv.Refresh()
	}
}
