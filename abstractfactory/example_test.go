package abstractfactory_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvpatterns/abstractfactory"
)

func ExampleGUIFactory() {
	g := abstractfactory.NewGUIFactory(os.Stdout)
	f := g.CreateFactory("BeOS")
	fmt.Println(f.Family())
	f.CreateButton().PressButton()
	// Output:
	// Mac
	// Mac button pressed
}
