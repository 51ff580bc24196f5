package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"

	guide "github.com/Sesamsesam/AI-foundations-sub000"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := guide.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := guide.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
