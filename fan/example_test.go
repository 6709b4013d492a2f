package fan_test

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/fan"
	"github.com/katalvlaran/lvmesh/mesh"
)

// ExampleAppend walks the fans of a square split along its diagonal.
func ExampleAppend() {
	neighbors, err := fan.FromFaces([]int{0, 1, 2, 0, 2, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(neighbors)

	around0, _ := fan.Append(nil, neighbors, 1, 0, mesh.Open)
	around1, _ := fan.Append(nil, neighbors, 0, 1, mesh.Open)
	fmt.Println(around0, around1)
	// Output:
	// [-1 -1 1 0 -1 -1]
	// [0 1] [0]
}
