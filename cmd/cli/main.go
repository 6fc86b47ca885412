package main

import (
	"fmt"
	"os"

	"linkstash/cmd/cli/root"

	_ "linkstash/cmd/cli/auth"
	_ "linkstash/cmd/cli/links"
)

func main() {
	if err := root.GetRoot().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
