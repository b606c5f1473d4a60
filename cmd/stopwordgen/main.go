package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/roniwahyu/multibahasa/pkg/config"
	"github.com/roniwahyu/multibahasa/pkg/db"
	"github.com/roniwahyu/multibahasa/pkg/export"
	"github.com/roniwahyu/multibahasa/pkg/pipeline"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	configFlag := flag.String("config", "pipeline.yaml", "Path to pipeline configuration")
	outFlag := flag.String("out", "", "Output CSV path (overrides config)")
	dbFlag := flag.String("db", "", "Also persist the table into this SQLite database (overrides config)")
	noTranslateFlag := flag.Bool("no-translate", false, "Skip the translation enrichment pass")
	flag.Parse()

	log.SetFlags(0)

	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *outFlag != "" {
		cfg.Output.CSV = *outFlag
	}
	if *dbFlag != "" {
		cfg.Output.DB = *dbFlag
	}
	if *noTranslateFlag {
		cfg.Translate.Enabled = false
	}

	p := pipeline.New(cfg)
	p.Logger = log.New(os.Stderr, "", 0)

	res, err := p.Run(ctx)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	if err := export.WriteFile(cfg.Output.CSV, res.Table); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Lexicon written to %s (%d rows)\n", cfg.Output.CSV, res.Table.Len())

	if cfg.Output.DB != "" {
		conn, err := sql.Open("sqlite3", cfg.Output.DB)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer conn.Close()

		if err := db.InitDB(conn); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		if err := db.SaveTable(conn, res.Table); err != nil {
			log.Fatalf("Failed to persist table: %v", err)
		}
		fmt.Printf("Lexicon persisted to %s\n", cfg.Output.DB)
	}

	fmt.Println("---------------------------------------------------")
	fmt.Print(res.Report())
}
