// Command import bulk-loads barber profiles from a CSV export into the
// barbers collection. This is the out-of-band creation path: the API itself
// never writes barber documents.
//
// Expected CSV columns: name, neighborhood, dorm, biography, hairstyles
// (comma-separated inside the cell), rating, gender, will-travel
// (TRUE/FALSE), cost.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
	"github.com/spartancutz/barber-discovery/internal/infrastructure/config"
	mongodb "github.com/spartancutz/barber-discovery/internal/infrastructure/db/mongo"
	"github.com/spartancutz/barber-discovery/pkg/logger"
)

func main() {
	csvPath := flag.String("csv", "", "path to the barber CSV export")
	flag.Parse()

	log := logger.Init(logger.Options{Pretty: true})

	if *csvPath == "" {
		log.Fatal().Msg("usage: import -csv <path>")
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	barbers, err := readBarberCSV(*csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("csv", *csvPath).Msg("could not read export")
	}
	if len(barbers) == 0 {
		log.Fatal().Msg("export contains no barbers")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	inserted, err := mongodb.NewBarberImporter(db).InsertMany(ctx, barbers)
	if err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}

	log.Info().Int("inserted", inserted).Msg("import complete")
}

// readBarberCSV parses the export into barber documents with the canonical
// schema: hairstyles split on commas, will-travel as a real boolean, numeric
// rating and cost.
func readBarberCSV(path string) ([]*domain.Barber, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	barbers := make([]*domain.Barber, 0, len(rows)-1)
	for n, row := range rows[1:] {
		b := &domain.Barber{
			Name:          field(row, "name"),
			Neighborhood:  field(row, "neighborhood"),
			Dorm:          field(row, "dorm"),
			Biography:     field(row, "biography"),
			Gender:        field(row, "gender"),
			Hairstyles:    splitHairstyles(field(row, "hairstyles")),
			WillTravel:    strings.EqualFold(field(row, "will-travel"), "TRUE"),
			ExampleImages: []string{},
		}
		if b.Name == "" {
			return nil, fmt.Errorf("row %d: name is required", n+2)
		}
		if v := field(row, "rating"); v != "" {
			if b.Rating, err = strconv.ParseFloat(v, 64); err != nil {
				return nil, fmt.Errorf("row %d: bad rating %q", n+2, v)
			}
		}
		if v := field(row, "cost"); v != "" {
			if b.Cost, err = strconv.ParseFloat(v, 64); err != nil {
				return nil, fmt.Errorf("row %d: bad cost %q", n+2, v)
			}
		}
		barbers = append(barbers, b)
	}
	return barbers, nil
}

func splitHairstyles(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	styles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			styles = append(styles, p)
		}
	}
	return styles
}
