package builder_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvpatterns/builder"
)

func ExampleBuilder() {
	u := builder.NewBuilder("42", "Grace").Email("grace@navy.mil").Build()
	fmt.Println(u)
	// Output: Id: 42, Name: Grace, Email: grace@navy.mil, Gender: null
}

func ExampleDemo() {
	builder.Demo(os.Stdout)
	// Output:
	// Id: 1, Name: Deepak, Email: null, Gender: Male
	// Id: 1, Name: Hims, Email: hims@iiitb.ac.in, Gender: Trans
}
