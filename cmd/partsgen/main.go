package main

import (
	"os"

	"github.com/librepcb/partsgen/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
