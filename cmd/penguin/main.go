package main

import (
	"os"

	"github.com/Ant-Tonmay/penguine/cmd/penguin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
