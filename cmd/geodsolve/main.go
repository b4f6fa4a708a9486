// Command geodsolve solves geodesic problems on an ellipsoid of revolution
// and measures geodesic polygons.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
