package main

import (
	"log"

	"github.com/daseul-kim/rejectlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
