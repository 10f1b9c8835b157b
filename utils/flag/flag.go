/*
flag package sets up cli flags shared across binaries

Usage:

	Flags listed in this package are shared across boundaries and binary-agnostic.
	For binary dependent flags please define in their respective main package.
*/

package flag

import (
	"flag"
)

const (
	APIServer = "api_server"
	Seed      = "seed"
	Ingest    = "ingest"
)

var (
	IsDevelopment = flag.Bool("dev", true, "set to true if the current run is for development. default value is true")
	ServiceName   = flag.String("service", APIServer, "'api_server', 'seed' or 'ingest'")
)

// Parse must be called from main after all binary-local flags are
// registered. It is not called from init so that go test's own flags
// survive.
func Parse() {
	flag.Parse()
}
