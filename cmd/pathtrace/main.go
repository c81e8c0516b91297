// pathtrace renders an offline Monte-Carlo path-traced image of a scene
// and writes it out as a tone-mapped 8-bit PNG.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
