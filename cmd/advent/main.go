package main

import "github.com/mchmarny/advent/pkg/cli"

func main() {
	cli.Execute()
}
