package main

import (
	"github.com/semwerk/semspec/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
