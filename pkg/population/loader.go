/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader.go
Description: CSV loader for population descriptions. Reads the standard
name,mother,father,trait schema into member records and hands them to the
population validator, so malformed pedigrees never reach the engine.
*/

package population

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/kleascm/lineage/pkg/interfaces"
)

// LoadCSV reads a population description from a CSV file with the header
// name,mother,father,trait. Blank mother and father mean the member is a
// root; trait is "1", "0", or blank for unknown.
func LoadCSV(path string) (*Population, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open population file: %w", err)
	}
	defer f.Close()

	pop, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return pop, nil
}

// ReadCSV parses a population description from r. See LoadCSV for the
// expected schema.
func ReadCSV(r io.Reader) (*Population, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"name", "mother", "father", "trait"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var records []interfaces.MemberRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		rec := interfaces.MemberRecord{
			ID:       row[cols["name"]],
			MotherID: row[cols["mother"]],
			FatherID: row[cols["father"]],
		}

		switch row[cols["trait"]] {
		case "1":
			t := true
			rec.Trait = &t
		case "0":
			t := false
			rec.Trait = &t
		case "":
			// Trait unknown.
		default:
			return nil, fmt.Errorf("line %d: invalid trait value %q", line, row[cols["trait"]])
		}

		records = append(records, rec)
	}

	return New(records)
}
