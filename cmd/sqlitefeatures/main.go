package main

import (
	"context"
	"log"

	"github.com/nsqlite/sqliteprobe/internal/sqlitefeatures"
)

func main() {
	if err := sqlitefeatures.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
