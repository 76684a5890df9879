// Command schemactl prints the schema.org records the site embeds, straight
// from the catalog. It is used to check structured data before a deploy.
//
//	schemactl business
//	schemactl service plan-management --html
//	schemactl page /locations/gosford --content ./site.yaml
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
