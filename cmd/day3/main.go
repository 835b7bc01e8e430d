package main

import (
	"github.com/mchmarny/advent/pkg/cli"
	"github.com/mchmarny/advent/pkg/rucksack"
)

func main() {
	cli.Drive(3, rucksack.Parser{})
}
