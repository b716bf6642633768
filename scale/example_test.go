package scale_test

import (
	"fmt"
	"strings"

	"github.com/SamuelHill/gomused/interval"
	"github.com/SamuelHill/gomused/scale"
)

// ExampleScales_Named walks the harmonic minor scale from C.
func ExampleScales_Named() {
	s := scale.Standard()

	notes, err := s.Named("harmonic minor", "C", interval.Up, false)
	if err != nil {
		fmt.Println("scale:", err)
		return
	}
	fmt.Println(strings.Join(notes, " "))
	// Output:
	// C D Eb F G Ab B C
}

// ExampleChords_Major stacks the C major triad.
func ExampleChords_Major() {
	c := scale.StandardChords()

	notes, err := c.Major("C", interval.Up, false)
	if err != nil {
		fmt.Println("chord:", err)
		return
	}
	fmt.Println(strings.Join(notes, " "))
	// Output:
	// C E G
}
