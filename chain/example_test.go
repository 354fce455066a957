package chain_test

import (
	"os"

	"github.com/katalvlaran/lvpatterns/chain"
)

// ExampleHandler_Log shows routing through a three-link chain, including
// a level that no link claims.
func ExampleHandler_Log() {
	logger := chain.NewInfoHandler(os.Stdout).
		SetNext(chain.NewErrorHandler(os.Stdout)).
		SetNext(chain.NewDebugHandler(os.Stdout))

	logger.Log(chain.LevelDebug, "cache warmed")
	logger.Log(chain.LevelInfo, "server started")
	logger.Log(0, "nobody listens")
	// Output:
	// Debug: cache warmed
	// Info: server started
	// Invalid level
}

func ExampleDemo() {
	chain.Demo(os.Stdout)
	// Output:
	// Debug: this is debug message
	// Info: this is info message
	// Error: this is error message
}
