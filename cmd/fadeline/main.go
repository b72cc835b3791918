package main

import (
	"os"

	"github.com/andyrewlee/fadeline/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
