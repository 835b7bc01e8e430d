package main

import (
	"github.com/mchmarny/advent/pkg/cli"
	"github.com/mchmarny/advent/pkg/rps"
)

func main() {
	cli.Drive(2, rps.Parser{})
}
