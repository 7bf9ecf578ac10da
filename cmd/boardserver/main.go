// Command boardserver starts a JSON HTTP server in front of the chess
// engine, seeded with the standard starting position.
package main

import (
	"flag"
	"log"
	"os"

	"chesscore/internal/httpx"
)

func main() {
	addr := flag.String("addr", getenv("CHESS_ADDR", ":8080"), "listen address")
	flag.Parse()

	srv := httpx.NewServer()
	log.Printf("HTTP listening on %s", *addr)
	if err := srv.Listen(*addr); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
