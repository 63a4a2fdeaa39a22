package main

import (
	cmd "github.com/intentd/intentd/cmd/intentd"
	"github.com/intentd/intentd/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting intentd")
	cmd.Execute()
}
