package decorator_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvpatterns/decorator"
)

func ExampleNewExtraMilk() {
	c := decorator.NewExtraMilk(decorator.NewExtraCream(decorator.SimpleCoffee{}))
	fmt.Println(c.Description())
	fmt.Println(c.Cost())
	// Output:
	// Simple coffee with extra cream with extra milk
	// 80
}

func ExampleTextProcessor_Process() {
	p := decorator.NewTextProcessor(strings.TrimSpace, strings.ToUpper)
	fmt.Println(p.Process("  go  "))
	// Output: GO
}

func ExampleDemo() {
	decorator.Demo(os.Stdout)
	// Output:
	// Simple coffee price 50
	// Simple coffee with extra cream with extra milk
	// Cost of coffee 80
}
