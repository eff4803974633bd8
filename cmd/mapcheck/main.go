package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"mudatlas.dev/internal/loader"
	"mudatlas.dev/internal/logger"
)

func main() {
	strict := flag.Bool("strict", false, "fail when a zone overflows its grid cell")
	output := flag.String("o", "", "write the JSON report to this file")
	flag.Usage = func() {
		fmt.Println("Usage: mapcheck [-strict] [-o report.json] <data-dir>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	logger.Init()

	dataDir := flag.Arg(0)
	fmt.Printf("Checking %s...\n", dataDir)

	ds, err := loader.Load(dataDir, loader.Options{RejectOverflow: *strict})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load data: %v\n", err)
		os.Exit(1)
	}

	report := loader.BuildReport(ds)
	for _, z := range report.ZoneReports {
		mark := ""
		if z.Overflow {
			mark = "  OVERFLOW"
		}
		fmt.Printf("  %-28s %-12s %4d rooms  floors %v%s\n", z.ZoneID, z.Region, z.Rooms, z.Floors, mark)
	}
	for _, id := range report.OrphanTables {
		fmt.Printf("  WARN room table %s has no zone on the world graph\n", id)
	}
	for _, e := range report.DanglingExits {
		fmt.Printf("  WARN %s %s leads to unknown zone %s\n", e.ZoneID, e.Via, e.Target)
	}

	for _, p := range report.Palettes {
		fmt.Printf("  palette %-6s %3d tags, default %s\n", p.Name, p.Tags, p.Default)
	}

	if *output != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR marshaling JSON: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*output, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR writing file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *output)
	}

	fmt.Printf("%d zones, %d rooms, %d mobs, %d overflowing (reach %d cells from each origin)\n",
		report.Zones, report.Rooms, report.Mobs, len(report.Overflow), report.ZoneReach)
	if !report.OK() {
		os.Exit(2)
	}
	fmt.Println("Done!")
}
