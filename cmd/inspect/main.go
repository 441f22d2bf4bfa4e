package main

import (
	"chat-live/repositories"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

func main() {
	_ = godotenv.Load()
	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	prefix := flag.String("prefix", "msg:", "Prefix to scan (msg:, msgid:, user:, user-email:)")
	limit := flag.Int("limit", 0, "Maximum number of rows, 0 for all")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("No database path: set -db or BADGER_FILEPATH")
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	rows, err := repositories.Inspect(db, *prefix, *limit)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Timestamp", "Entity ID", "Namespace", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, row := range rows {
		table.Append([]string{row.Key, row.Type, row.Timestamp, row.EntityID, row.Namespace, row.Detail})
	}
	table.Render()
	fmt.Printf("\n%d record(s) under %q\n", len(rows), *prefix)
}

// openDB opens read only, the server may hold the lock.
func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		return nil, fmt.Errorf("database needs a truncate, stop the server and open it once in write mode: %w", err)
	}
	return db, err
}
