package main

import (
	"log"
	"nutricoach/config"
	"nutricoach/helper"
	"os"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Migration action (up/down/drop/step-up) is required")
	}

	cfg := config.Get()

	if err := helper.Migrate(cfg, os.Args[1]); err != nil {
		log.Fatal(err)
	}
}
