package main

import (
	"log"

	"github.com/ujen5173/Ridezio-sub000/internal/app"
	"github.com/ujen5173/Ridezio-sub000/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("ridezio init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("ridezio run: %v", err)
	}
}
