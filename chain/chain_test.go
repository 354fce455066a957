package chain_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvpatterns/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildChain links Info(1) → Error(2) → Debug(3) writing into buf.
func buildChain(buf *bytes.Buffer) chain.Logger {
	return chain.NewInfoHandler(buf).
		SetNext(chain.NewErrorHandler(buf)).
		SetNext(chain.NewDebugHandler(buf))
}

func TestSetNext_AppendsAtTail(t *testing.T) {
	var buf bytes.Buffer
	head := chain.NewInfoHandler(&buf)
	errH := chain.NewErrorHandler(&buf)
	dbgH := chain.NewDebugHandler(&buf)

	got := head.SetNext(errH).SetNext(dbgH)

	// SetNext returns the receiver, so the head is preserved.
	require.Same(t, head, got)
	assert.Same(t, errH, head.Next())
	assert.Same(t, dbgH, errH.Next())
	assert.Nil(t, dbgH.Next())
	assert.Equal(t, 3, chain.Len(head))
}

func TestLog_RoutesToMatchingHandlerOnly(t *testing.T) {
	cases := []struct {
		name  string
		level int
		want  string
	}{
		{"debug", chain.LevelDebug, "Debug: m\n"},
		{"info", chain.LevelInfo, "Info: m\n"},
		{"error", chain.LevelError, "Error: m\n"},
		{"zero", 0, "Invalid level\n"},
		{"beyond", 7, "Invalid level\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			buildChain(&buf).Log(tc.level, "m")
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestLog_SingleHandlerFallback(t *testing.T) {
	var buf bytes.Buffer
	h := chain.NewDebugHandler(&buf)
	h.Log(chain.LevelInfo, "ignored")
	assert.Equal(t, chain.InvalidLevel+"\n", buf.String())
	assert.Equal(t, 1, chain.Len(h))
}

func TestLog_DuplicateLevelFirstWins(t *testing.T) {
	var first, second bytes.Buffer
	h := chain.NewInfoHandler(&first).SetNext(chain.NewInfoHandler(&second))
	h.Log(chain.LevelInfo, "once")
	assert.Equal(t, "Info: once\n", first.String())
	assert.Empty(t, second.String())
}

func TestLen_Nil(t *testing.T) {
	assert.Equal(t, 0, chain.Len(nil))
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	chain.Demo(&buf)
	assert.Equal(t,
		"Debug: this is debug message\n"+
			"Info: this is info message\n"+
			"Error: this is error message\n",
		buf.String())
}
