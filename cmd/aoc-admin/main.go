package main

import "github.com/oshokin/aoc-admin/cmd/aoc-admin/cmd"

func main() {
	cmd.Execute()
}
