package main

import (
	"log"
	"os"
)

func main() {
	logger := log.Default()
	if err := execute(newRootCmd(logger), logger); err != nil {
		os.Exit(1)
	}
}
