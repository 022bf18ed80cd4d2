package main

import (
	"github.com/nvaswani/vibecheck/cmd"
)

func main() {
	cmd.Execute()
}
