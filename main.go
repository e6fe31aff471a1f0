package main

import (
	"github.com/maxgio92/cyclemark/pkg/cmd"
)

func main() {
	cmd.Execute()
}
