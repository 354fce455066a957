// Package adapter implements the Adapter pattern: a JSON source is exposed
// through the Processor interface by converting it to XML and handing the
// result to an XML-only processing tool.
package adapter

import (
	"io"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// Datatypes is a data representation that can describe itself.
type Datatypes interface {
	Description()
}

// Processor is the target interface.
type Processor interface {
	StartProcess()
}

// JSONTypes is the source representation.
type JSONTypes struct{ out io.Writer }

// XMLTypes is the representation DataProcessorTool understands.
type XMLTypes struct{ out io.Writer }

// NewJSONTypes returns a JSON source printing to w (nil → stdout).
func NewJSONTypes(w io.Writer) JSONTypes { return JSONTypes{out: w} }

// NewXMLTypes returns an XML value printing to w (nil → stdout).
func NewXMLTypes(w io.Writer) XMLTypes { return XMLTypes{out: w} }

// Description implements Datatypes.
func (j JSONTypes) Description() { console.Println(j.out, "JSON data") }

// Description implements Datatypes.
func (x XMLTypes) Description() { console.Println(x.out, "XML data") }

// DataProcessorTool processes XML data.
type DataProcessorTool struct {
	data Datatypes
	out  io.Writer
}

// NewDataProcessorTool returns a tool over data.
func NewDataProcessorTool(w io.Writer, data Datatypes) *DataProcessorTool {
	return &DataProcessorTool{data: data, out: w}
}

// StartProcess announces processing and describes its data.
// The trailing space in the announcement is part of the output.
func (t *DataProcessorTool) StartProcess() {
	console.Println(t.out, "Data processing stated ")
	t.data.Description()
}

// DataAdaptor adapts a JSON source to Processor.
type DataAdaptor struct {
	source Datatypes
	out    io.Writer
}

// NewDataAdaptor wraps source.
func NewDataAdaptor(w io.Writer, source Datatypes) *DataAdaptor {
	return &DataAdaptor{source: source, out: w}
}

// StartProcess describes the source, converts it to XML and runs the
// processing tool on the result.
func (a *DataAdaptor) StartProcess() {
	console.Println(a.out, "Data started converting")
	a.source.Description()
	console.Println(a.out, "data converted")
	NewDataProcessorTool(a.out, NewXMLTypes(a.out)).StartProcess()
}

var (
	_ Processor = (*DataAdaptor)(nil)
	_ Processor = (*DataProcessorTool)(nil)
)

// Demo runs a JSON source through the adaptor.
func Demo(w io.Writer) {
	var p Processor = NewDataAdaptor(w, NewJSONTypes(w))
	p.StartProcess()
}
