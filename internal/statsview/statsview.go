// Package statsview runs a local HTTP server with runtime statistics of the
// interpreter, provided by "github.com/go-echarts/statsview".
//
// Graphs are served at
//
//	<addr>/debug/statsview
//
// and the standard pprof endpoints at
//
//	<addr>/debug/pprof/
package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

// URL returns where the graphs can be viewed for a server on addr
func URL(addr string) string {
	return fmt.Sprintf("http://%s%s", addr, path)
}

// serve starts the server and does not return until it stops
var serve = func(addr string) {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	statsview.New().Start()
}

// Launch starts the server in a new goroutine and writes its URL to output.
// An empty addr uses DefaultAddress.
func Launch(addr string, output io.Writer) {
	if addr == "" {
		addr = DefaultAddress
	}
	go serve(addr)

	fmt.Fprintf(output, "stats server available at %s\n", URL(addr))
}
