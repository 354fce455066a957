package render_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvpatterns/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	cases := map[string]string{
		"chain of responsibility": "Chain Of Responsibility",
		"abstract_factory":        "Abstract Factory",
		"text-processor":          "Text Processor",
		"  state  ":               "State",
	}
	for in, want := range cases {
		assert.Equal(t, want, render.Title(in), in)
	}
}

func TestBanner_PlainWhenNotTTY(t *testing.T) {
	var buf bytes.Buffer
	b := render.NewBanner(&buf, "63", false)
	assert.True(t, b.Plain())
	assert.Equal(t, "== Flyweight ==", b.Render("flyweight"))
}

func TestBanner_ExplicitPlain(t *testing.T) {
	b := render.NewBanner(nil, "63", true)
	assert.Equal(t, "== Command ==", b.Render("command"))
}

func TestIsTTY_Buffer(t *testing.T) {
	assert.False(t, render.IsTTY(&bytes.Buffer{}))
	assert.False(t, render.IsTTY(nil))
}
