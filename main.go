package main

import "github.com/brk3/habitgrid/cmd"

func main() {
	cmd.Execute()
}
