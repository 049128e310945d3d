// Command sxdump inspects compiled script modules.
//
//	sxdump info cloth.sx
//	sxdump dump cloth.sx --section functions
//	sxdump browse cloth.sx
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
