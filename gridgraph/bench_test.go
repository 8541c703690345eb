package gridgraph_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/circuitloop/gridgraph"
	"github.com/katalvlaran/circuitloop/schematic"
)

// ladder builds n lamps in series along y=0 with a rung down to y=1 between
// each pair.
func ladder(n int) schematic.Schematic {
	var s schematic.Schematic
	for i := 0; i < n; i++ {
		s.Elements = append(s.Elements, schematic.Element{Type: "lamp", X: 2 * i, Y: 0})
		s.Wires = append(s.Wires, schematic.WireSegment{X1: 2 * i, Y1: 0, X2: 2*i + 2, Y2: 0})
		s.Wires = append(s.Wires, schematic.WireSegment{X1: 2*i + 1, Y1: 0, X2: 2*i + 1, Y2: 1})
	}
	s.Wires = append(s.Wires, schematic.WireSegment{X1: 1, Y1: 1, X2: 2 * n, Y2: 1})

	return s
}

func BenchmarkNew(b *testing.B) {
	s := ladder(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.New(context.Background(), s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPartition(b *testing.B) {
	gg, err := gridgraph.New(context.Background(), ladder(200))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = gg.Partition(); err != nil {
			b.Fatal(err)
		}
	}
}
