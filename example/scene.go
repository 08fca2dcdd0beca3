package main

import (
	"go.uber.org/zap"

	"github.com/go-theft-auto/interact"
)

type plan int

const (
	planFree plan = iota
	planPro
	planTeam
)

func (p plan) String() string {
	switch p {
	case planFree:
		return "Free"
	case planPro:
		return "Pro"
	case planTeam:
		return "Team"
	default:
		return "Unknown"
	}
}

// form is the demo scene. It keeps typed handles to the widgets it reads
// back after each update.
type form struct {
	name     *interact.TextField
	email    *interact.TextField
	country  *interact.Dropdown
	plan     *interact.Choice[plan]
	terms    *interact.Checkbox
	submit   *interact.Button
	clear    *interact.Button
	status   *interact.TextField
	logger   *zap.Logger
	attempts int
}

func newForm(ui *interact.UI, logger *zap.Logger) *form {
	f := &form{
		name:    interact.NewTextField(40, 40, 320, 36, 24),
		email:   interact.NewTextField(40, 96, 320, 36, 40),
		country: interact.NewDropdown(400, 40, 200, 36, []string{"Germany", "France", "Spain", "Italy", "Poland", "Sweden", "Norway"}),
		plan:    interact.DropdownFromStringers(400, 96, 200, 36, []plan{planFree, planPro, planTeam}),
		terms:   interact.NewCheckbox(40, 160, 24, "I accept the terms"),
		submit:  interact.NewButton(40, 220, 140, 40, "Submit"),
		clear:   interact.NewButton(200, 220, 140, 40, "Clear"),
		status:  interact.NewTextField(40, 300, 560, 36, 64),
		logger:  logger,
	}

	f.name.SetPlaceholder("Name")
	f.email.SetPlaceholder("E-mail")
	f.status.SetPlaceholder("Status")
	f.plan.Select(planFree)

	// Dropdowns are added last so their open lists draw above the rest.
	ui.Add(f.name, f.email, f.terms, f.submit, f.clear, f.status, f.plan, f.country)

	f.submit.ApplyStyle(interact.ButtonPrimary())
	f.clear.ApplyStyle(interact.ButtonDanger())
	return f
}

// update runs the form logic after the widgets consumed this frame's input.
func (f *form) update(in *interact.InputState) {
	if f.clear.Clicked() {
		f.name.Reset()
		f.email.Reset()
		f.terms.SetChecked(false)
		f.country.Reset()
		f.plan.Select(planFree)
		f.status.Clear()
		f.logger.Debug("form cleared")
	}

	if f.country.Changed() {
		country, _ := f.country.SelectedItem()
		f.logger.Debug("country selected", zap.String("country", country))
	}

	if f.submit.Clicked() {
		f.attempts++
		f.status.SetValue(f.validate())
		p, _ := f.plan.Selected()
		f.logger.Info("form submitted",
			zap.Int("attempt", f.attempts),
			zap.String("name", f.name.Text()),
			zap.String("email", f.email.Text()),
			zap.String("country", f.country.SelectedItemOrEmpty()),
			zap.Stringer("plan", p),
			zap.Bool("terms", f.terms.IsChecked()),
		)
	}
}

func (f *form) validate() string {
	switch {
	case !f.name.IsValid():
		return "Please enter a name"
	case !f.email.IsValid():
		return "Please enter an e-mail address"
	case f.country.SelectedIndex() < 0:
		return "Please choose a country"
	case !f.terms.IsChecked():
		return "Please accept the terms"
	default:
		return "Thanks, " + f.name.Text() + "!"
	}
}
