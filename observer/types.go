package observer

import (
	"io"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// Observer receives every message a Subject publishes.
type Observer interface {
	Update(message string)
}

// EmailObserver delivers messages by "email".
type EmailObserver struct{ out io.Writer }

// PhoneObserver delivers messages by "phone".
type PhoneObserver struct{ out io.Writer }

// NewEmailObserver returns an EmailObserver printing to w (nil → stdout).
func NewEmailObserver(w io.Writer) *EmailObserver { return &EmailObserver{out: w} }

// NewPhoneObserver returns a PhoneObserver printing to w (nil → stdout).
func NewPhoneObserver(w io.Writer) *PhoneObserver { return &PhoneObserver{out: w} }

// Update implements Observer.
func (o *EmailObserver) Update(message string) {
	console.Println(o.out, "Sending message via email :  "+message)
}

// Update implements Observer.
func (o *PhoneObserver) Update(message string) {
	console.Println(o.out, "Sending message via phone :  "+message)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(message string)

// Update calls f(message).
func (f ObserverFunc) Update(message string) { f(message) }
