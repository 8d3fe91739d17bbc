// Command server runs the BIM viewer backend: REST API for projects, RDI
// topics, viewpoint capture, and BCF archive exchange.
package main

import (
	"context"
	"log"

	"github.com/asanmartin/bimviewer-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run: %v", err)
	}
}
