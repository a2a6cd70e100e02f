package config

import (
	"flag"
	"os"
)

// parses CLI flags for the ingester
func ParseIngestFlags() Flags {
	args := os.Args[1:]

	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	path := fs.String("path", "./resources/programs.json", "path to program seed JSON file")
	createSchema := fs.Bool("create-schema", false, "create tables before loading")
	clearFlag := fs.Bool("clear", false, "clear existing programs before loading")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Path: *path, CreateSchema: *createSchema, Clear: *clearFlag}
}
