package main

import (
	"log"

	"github.com/avc-dev/movies-api/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
