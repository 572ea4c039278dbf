package main

import (
	"context"
	"log"

	"github.com/nsqlite/sqliteprobe/internal/sqliteprobe"
)

func main() {
	if err := sqliteprobe.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
