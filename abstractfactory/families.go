package abstractfactory

import (
	"io"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

type guiFactory struct{ out io.Writer }

// CreateFactory implements GUIFactory. Matching is exact and case-sensitive.
func (g guiFactory) CreateFactory(family string) Factory {
	switch family {
	case FamilyWindows:
		return WindowsFactory{out: g.out}
	case FamilyMac:
		return MacFactory{out: g.out}
	default:
		return MacFactory{out: g.out}
	}
}

// KnownFamily reports whether CreateFactory recognizes family without
// falling back.
func KnownFamily(family string) bool {
	return family == FamilyWindows || family == FamilyMac
}

// WindowsFactory builds Windows widgets.
type WindowsFactory struct{ out io.Writer }

// CreateButton implements Factory.
func (f WindowsFactory) CreateButton() Button { return WindowsButton{out: f.out} }

// CreateTextBox implements Factory.
func (f WindowsFactory) CreateTextBox() TextBox { return WindowsTextBox{out: f.out} }

// Family implements Factory.
func (WindowsFactory) Family() string { return FamilyWindows }

// MacFactory builds Mac widgets.
type MacFactory struct{ out io.Writer }

// CreateButton implements Factory.
func (f MacFactory) CreateButton() Button { return MacButton{out: f.out} }

// CreateTextBox implements Factory.
func (f MacFactory) CreateTextBox() TextBox { return MacTextBox{out: f.out} }

// Family implements Factory.
func (MacFactory) Family() string { return FamilyMac }

// WindowsButton is the Windows Button.
type WindowsButton struct{ out io.Writer }

// PressButton implements Button.
func (b WindowsButton) PressButton() { console.Println(b.out, "Windows button pressed") }

// WindowsTextBox is the Windows TextBox.
type WindowsTextBox struct{ out io.Writer }

// PressTextBox implements TextBox.
func (t WindowsTextBox) PressTextBox() { console.Println(t.out, "Windows text box clicked") }

// MacButton is the Mac Button.
type MacButton struct{ out io.Writer }

// PressButton implements Button.
func (b MacButton) PressButton() { console.Println(b.out, "Mac button pressed") }

// MacTextBox is the Mac TextBox.
type MacTextBox struct{ out io.Writer }

// PressTextBox implements TextBox.
func (t MacTextBox) PressTextBox() { console.Println(t.out, "Mac text box clicked") }

// Demo creates the Windows family and uses both of its widgets.
func Demo(w io.Writer) {
	factory := NewGUIFactory(w).CreateFactory(FamilyWindows)
	btn := factory.CreateButton()
	box := factory.CreateTextBox()
	btn.PressButton()
	box.PressTextBox()
}
