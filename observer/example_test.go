package observer_test

import (
	"os"

	"github.com/katalvlaran/lvpatterns/observer"
)

func ExampleDemo() {
	observer.Demo(os.Stdout)
	// Output:
	// Sending message via phone :  Kese ho
	// Sending message via email :  Kese ho
}

func ExampleGroupDemo() {
	observer.GroupDemo(os.Stdout)
	// Output:
	// Message recieved by 1 : NEW MESSAGE
	// Message recieved by 2 : NEW MESSAGE
	// Message recieved by 2 : NEW MESSAGE
	// Message recieved by 2 : BYE
	// Message recieved by 2 : BYE
}
