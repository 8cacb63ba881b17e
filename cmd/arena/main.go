package main

import (
	"github.com/mcoot/arenahub/internal/cli"
)

func main() {
	cli.Execute()
}
