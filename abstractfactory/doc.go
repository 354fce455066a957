// Package abstractfactory implements the Abstract Factory pattern for GUI
// widget families.
//
// Overview:
//
//   - GUIFactory.CreateFactory maps a family name to a Factory.
//   - Each Factory creates a Button and a TextBox of its own family, so the
//     widgets a caller gets always match each other.
//
// Families:
//
//	"Windows" → WindowsFactory
//	"Mac"     → MacFactory
//	other     → MacFactory (DefaultFamily)
//
// Unknown names fall back to the default family instead of failing. This
// is caller-visible: CreateFactory never returns an error, and callers
// that need to reject unknown names should check KnownFamily first.
package abstractfactory
