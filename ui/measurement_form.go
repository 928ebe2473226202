package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"bodycalc/internal/input"
	"bodycalc/internal/model"
)

// MeasurementForm holds the GUI entry fields for one measurement.
type MeasurementForm struct {
	ageEntry     *widget.Entry
	genderSelect *widget.Select
	heightEntry  *widget.Entry
	weightEntry  *widget.Entry
	neckEntry    *widget.Entry
	abdomenEntry *widget.Entry
	waistEntry   *widget.Entry
	hipEntry     *widget.Entry
	form         *fyne.Container
}

// NewMeasurementForm creates the measurement form with Male selected.
func NewMeasurementForm() *MeasurementForm {
	mf := &MeasurementForm{}

	mf.ageEntry = widget.NewEntry()
	mf.ageEntry.SetPlaceHolder("years")

	genders := make([]string, len(model.Genders))
	for i, g := range model.Genders {
		genders[i] = string(g)
	}
	mf.genderSelect = widget.NewSelect(genders, nil)
	mf.genderSelect.SetSelected(string(model.Male))

	mf.heightEntry = widget.NewEntry()
	mf.heightEntry.SetPlaceHolder("180")

	mf.weightEntry = widget.NewEntry()
	mf.weightEntry.SetPlaceHolder("80")

	mf.neckEntry = widget.NewEntry()
	mf.neckEntry.SetPlaceHolder("38")

	// Circumferences of the other gender stay editable and are ignored.
	mf.abdomenEntry = widget.NewEntry()
	mf.waistEntry = widget.NewEntry()
	mf.hipEntry = widget.NewEntry()

	mf.form = container.NewVBox(
		widget.NewLabelWithStyle("Measurements", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Age", mf.ageEntry),
			widget.NewFormItem("Gender", mf.genderSelect),
			widget.NewFormItem("Height (cm)", mf.heightEntry),
			widget.NewFormItem("Weight (kg)", mf.weightEntry),
			widget.NewFormItem("Neck (cm)", mf.neckEntry),
			widget.NewFormItem("Abdomen (cm, males)", mf.abdomenEntry),
			widget.NewFormItem("Waist (cm, females)", mf.waistEntry),
			widget.NewFormItem("Hip (cm, females)", mf.hipEntry),
		),
	)

	return mf
}

// Container returns the form's Fyne container.
func (mf *MeasurementForm) Container() *fyne.Container {
	return mf.form
}

// Raw returns the current field text for parsing.
func (mf *MeasurementForm) Raw() input.Raw {
	return input.Raw{
		Age:     mf.ageEntry.Text,
		Gender:  mf.genderSelect.Selected,
		Height:  mf.heightEntry.Text,
		Weight:  mf.weightEntry.Text,
		Neck:    mf.neckEntry.Text,
		Abdomen: mf.abdomenEntry.Text,
		Waist:   mf.waistEntry.Text,
		Hip:     mf.hipEntry.Text,
	}
}

// Reset clears every entry and selects Male.
func (mf *MeasurementForm) Reset() {
	for _, e := range []*widget.Entry{
		mf.ageEntry, mf.heightEntry, mf.weightEntry, mf.neckEntry,
		mf.abdomenEntry, mf.waistEntry, mf.hipEntry,
	} {
		e.SetText("")
	}
	mf.genderSelect.SetSelected(string(model.Male))
}
