// Command meshkit builds fixture meshes, refines them with edge and triangle
// splits, carves vertex paths and checks the half-edge invariants.
//
//	meshkit stats --shape icosahedron
//	meshkit refine --shape grid --rows 4 --cols 4 --edge-splits 20
//	meshkit exsect --shape icosahedron --from 11 --to 1
//	meshkit check --config mesh.yaml --format json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "meshkit:", err)
		os.Exit(1)
	}
}
