package main

import (
	"log"

	"chipledger/internal/app"
	"chipledger/internal/logger"
)

func main() {
	server := app.NewServer()
	defer logger.Sync()
	log.Fatal(server.Start())
}
