package main

import (
	"github.com/pable/go-h2h/cmd"
)

func main() {
	cmd.Execute()
}
