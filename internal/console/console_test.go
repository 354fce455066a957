package console_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/katalvlaran/lvpatterns/internal/console"
	"github.com/stretchr/testify/assert"
)

func TestOut_NilFallsBackToStdout(t *testing.T) {
	assert.Equal(t, os.Stdout, console.Out(nil))
}

func TestOut_KeepsGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	assert.Same(t, &buf, console.Out(&buf))
}

func TestPrintln_AndPrintf(t *testing.T) {
	var buf bytes.Buffer
	console.Println(&buf, "Info:", "hello")
	console.Printf(&buf, "at (%d, %d)", 1, 2)
	assert.Equal(t, "Info: hello\nat (1, 2)\n", buf.String())
}
