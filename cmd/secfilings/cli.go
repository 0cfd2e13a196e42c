package main

import (
	"context"
	"io"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/Guest400123064/parse-sec-filings/extract"
	"github.com/Guest400123064/parse-sec-filings/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Extractions secfilings.ExtractionService
	Runner      *extract.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract the risk-factors section from raw 10-K filings"`
	List    ListCmd    `cmd:"" help:"List stored extraction records"`
	Show    ShowCmd    `cmd:"" help:"Print stored section text for a symbol"`
	Delete  DeleteCmd  `cmd:"" help:"Delete stored records for a symbol"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Dir         string `arg:"" help:"Filings directory (<symbol>/10-K/<date>/__RAW__.htm layout)"`
	Out         string `short:"o" default:"item1a.json" help:"JSON dump path"`
	DB          string `help:"Database path override"`
	Log         string `help:"Audit log path (JSON lines); defaults to stderr"`
	MinYear     int    `default:"2006" help:"Skip filings filed before this year"`
	Format      string `default:"text" enum:"text,markdown" help:"Section output format"`
	Concurrency int    `short:"c" default:"0" help:"Concurrent extraction limit (0 = one per CPU)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Symbol string `help:"Only records for this symbol"`
	Failed bool   `help:"Only failure records"`
	Limit  int    `default:"50" help:"Maximum records to print"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Symbol string `arg:"" help:"Company ticker"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Symbol string `arg:"" help:"Company ticker"`
	Force  bool   `help:"Confirm deletion"`
}
