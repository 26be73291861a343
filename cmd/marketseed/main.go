package main

import (
	"marketseed/internal/cli"
)

func main() {
	cli.Execute()
}
