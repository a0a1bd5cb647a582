package main

import (
	"os"

	"github.com/benefitpath/screener/cmd/benefitscreen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
