package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

const reportPlaceholder = "Enter measurements and press Calculate."

// navigationKeys move the cursor or selection without changing the report.
var navigationKeys = map[fyne.KeyName]bool{
	fyne.KeyUp:       true,
	fyne.KeyDown:     true,
	fyne.KeyLeft:     true,
	fyne.KeyRight:    true,
	fyne.KeyHome:     true,
	fyne.KeyEnd:      true,
	fyne.KeyPageUp:   true,
	fyne.KeyPageDown: true,
}

// reportEntry shows the text report of the last calculation. The report
// is replaced as a whole by SetReport; the user can only select and copy.
type reportEntry struct {
	widget.Entry
}

func newReportEntry() *reportEntry {
	e := &reportEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapOff
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.SetPlaceHolder(reportPlaceholder)
	e.ExtendBaseWidget(e)
	return e
}

// SetReport replaces the report and moves the cursor back to the start.
func (e *reportEntry) SetReport(text string) {
	e.SetText(text)
	e.CursorRow, e.CursorColumn = 0, 0
	e.Refresh()
}

func (e *reportEntry) TypedRune(_ rune) {}

func (e *reportEntry) TypedKey(ev *fyne.KeyEvent) {
	if navigationKeys[ev.Name] {
		e.Entry.TypedKey(ev)
	}
}

func (e *reportEntry) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(s)
	}
}
