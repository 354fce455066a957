// Package decorator implements the Decorator pattern over a coffee order,
// plus a function-composition variant for string transformations.
//
// Coffee decorators:
//
//	Each layer wraps exactly one Coffee and computes base-then-self:
//
//	    ExtraMilk(ExtraCream(SimpleCoffee))
//	    Cost()        = 50 + 20 + 10 = 80
//	    Description() = "Simple coffee" + " with extra cream" + " with extra milk"
//
//	The innermost layer's augmentation appears first, the outermost last.
//
// Function composition:
//
//	NewTextProcessor(f, g).Process(s) == g(f(s)). With no functions the
//	processor is the identity.
package decorator
