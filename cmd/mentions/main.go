// Command mentions scans a piece of text for topic (@) and journey (#)
// mentions against the configured catalogs and prints the resolved
// references as JSON. It is a debugging aid for catalog authors, not
// part of the main server.
//
// Flags:
//
//	--topics    path to a topics YAML file (default: embedded catalog)
//	--journeys  path to a journeys YAML file (default: embedded catalog)
//	--text      text to scan; reads stdin when empty
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/nestlingapp/nestling-backend/internal/app"
	"github.com/nestlingapp/nestling-backend/internal/catalog"
	"github.com/nestlingapp/nestling-backend/internal/config"
	"github.com/nestlingapp/nestling-backend/internal/mention"
)

func main() {
	topicsFlag := flag.String("topics", "", "path to a topics YAML file (default: embedded catalog)")
	journeysFlag := flag.String("journeys", "", "path to a journeys YAML file (default: embedded catalog)")
	textFlag := flag.String("text", "", "text to scan; reads stdin when empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// CLI flags override config.
	topicsPath := cfg.Catalog.TopicsPath
	if *topicsFlag != "" {
		topicsPath = *topicsFlag
	}
	journeysPath := cfg.Catalog.JourneysPath
	if *journeysFlag != "" {
		journeysPath = *journeysFlag
	}

	cat, err := catalog.Load(topicsPath, journeysPath)
	if err != nil {
		logger.Error("load catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	text := *textFlag
	if text == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("read stdin", slog.String("error", err.Error()))
			os.Exit(1)
		}
		text = string(raw)
	}

	refs := mention.ExtractReferences(text, cat.Topics, cat.Journeys)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(refs); err != nil {
		logger.Error("encode output", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
