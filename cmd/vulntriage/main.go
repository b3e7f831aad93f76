package main

import (
	"github.com/vulntriage/vulntriage/cmd"
)

func main() {
	cmd.Execute()
}
