// cmd/itemstore/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"itemstore/internal/inventory"
	"itemstore/internal/tracing"
)

func main() {
	shutdown := tracing.Init("itemstore")
	if shutdown != nil {
		defer shutdown()
	}

	svc := inventory.NewService()
	handler := inventory.NewHandler(svc)
	router := handler.Routes(tracing.Middleware("itemstore"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 Starting Item Store Service on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
