package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"message-board/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type InspectConfig struct {
	DBPath string `envconfig:"BADGER_FILEPATH" required:"true"`
	// INSPECT_PREFIX restricts the scan to a part of the keyspace
	Prefix string `envconfig:"INSPECT_PREFIX" default:"msg:"`
}

func main() {
	var config InspectConfig
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	db, err := openDB(config.DBPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Size", "Title", "Created", "Updated"})
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

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(config.Prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			rawKey := string(item.Key())

			err := item.Value(func(v []byte) error {
				message, err := repositories.DecodeDiskMessage(v)
				if err != nil {
					// Keep scanning, a single bad record should not hide the others
					fmt.Printf("Error decoding key %s: %v\n", rawKey, err)
					return nil
				}

				updated := "-"
				if message.UpdatedAt != nil {
					updated = formatNanos(*message.UpdatedAt)
				}
				table.Append([]string{
					rawKey,
					fmt.Sprintf("%d B", len(v)),
					message.Title,
					formatNanos(message.CreatedAt),
					updated,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func formatNanos(ns uint64) string {
	return time.Unix(0, int64(ns)).UTC().Format(time.RFC3339)
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		return nil, fmt.Errorf("database needs recovery, open it once with the board command first: %w", err)
	}
	return db, err
}
