package abstractfactory

import "io"

// Family names understood by CreateFactory.
const (
	FamilyWindows = "Windows"
	FamilyMac     = "Mac"

	// DefaultFamily is used for any unrecognized name.
	DefaultFamily = FamilyMac
)

// Button is a pressable widget.
type Button interface {
	PressButton()
}

// TextBox is a clickable text field.
type TextBox interface {
	PressTextBox()
}

// Factory creates one family of widgets.
type Factory interface {
	CreateButton() Button
	CreateTextBox() TextBox
	Family() string
}

// GUIFactory selects a Factory by family name.
type GUIFactory interface {
	CreateFactory(family string) Factory
}

// NewGUIFactory returns the stock GUIFactory; widgets print to w (nil → stdout).
func NewGUIFactory(w io.Writer) GUIFactory {
	return guiFactory{out: w}
}
