package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/gautamprafful007/PDF-Comparator/config"
	"github.com/gautamprafful007/PDF-Comparator/internal/comparator"
	"github.com/gautamprafful007/PDF-Comparator/internal/exporter"
	"github.com/gautamprafful007/PDF-Comparator/internal/extractor"
	"github.com/gautamprafful007/PDF-Comparator/internal/report"
	"github.com/gautamprafful007/PDF-Comparator/pkg/env"
	"github.com/gautamprafful007/PDF-Comparator/pkg/httpserver"
	"github.com/gautamprafful007/PDF-Comparator/pkg/logging"
)

func main() {
	env.LoadEnv()
	logging.InitLogger(env.GetEnv("DEBUG", "") != "")
	config.LoadConfig(".")

	app := &cli.App{
		Name:  "pdfcompare",
		Usage: "Compare two PDF documents and report the differences",
		Commands: []*cli.Command{
			compareCommand(),
			serveCommand(),
			exportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.Log.Fatal(err)
	}
}

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Aliases:   []string{"c"},
		Usage:     "Compare two PDF files",
		ArgsUsage: "<first.pdf> <second.pdf>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the full report as JSON"},
			&cli.StringFlag{Name: "html", Usage: "write an HTML report to `PATH`"},
			&cli.StringFlag{Name: "pdf", Usage: "write a PDF report to `PATH`"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: pdfcompare compare <first.pdf> <second.pdf>", 1)
			}
			path1, path2 := c.Args().Get(0), c.Args().Get(1)

			text1, err := extractPDF(path1)
			if err != nil {
				return err
			}
			text2, err := extractPDF(path2)
			if err != nil {
				return err
			}

			records := comparator.Compare(text1, text2)
			summary := comparator.Summarize(records)
			res := report.NewResult(filepath.Base(path1), filepath.Base(path2), records, summary)

			if out := c.String("html"); out != "" {
				body, _ := exporter.HTML(res)
				if err := os.WriteFile(out, body, 0644); err != nil {
					return fmt.Errorf("failed to write html report: %w", err)
				}
				logging.Log.Infof("Wrote HTML report to %s", out)
			}
			if out := c.String("pdf"); out != "" {
				body, _, err := exporter.PDF(res)
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, body, 0644); err != nil {
					return fmt.Errorf("failed to write pdf report: %w", err)
				}
				logging.Log.Infof("Wrote PDF report to %s", out)
			}

			if c.Bool("json") {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printSummary(summary)
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the comparison HTTP server",
		Action: func(c *cli.Context) error {
			store, err := report.OpenStore(config.Config.StoragePath, config.Config.EncryptionKey)
			if err != nil {
				return err
			}
			defer store.Close()

			server := httpserver.NewServer(store, config.Config.Port, config.Config.MaxUploadMB)
			return server.Start()
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Re-export a stored report",
		ArgsUsage: "<report-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: "html", Usage: "export format: html or pdf"},
			&cli.StringFlag{Name: "out", Usage: "output `PATH` (defaults to the generated report filename)"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: pdfcompare export <report-id>", 1)
			}

			store, err := report.OpenStore(config.Config.StoragePath, config.Config.EncryptionKey)
			if err != nil {
				return err
			}
			defer store.Close()

			res, err := store.Get(c.Args().First())
			if errors.Is(err, report.ErrNotFound) {
				return cli.Exit("report not found: "+c.Args().First(), 1)
			}
			if err != nil {
				return err
			}

			var body []byte
			var filename string
			switch format := c.String("format"); format {
			case "html":
				body, filename = exporter.HTML(res)
			case "pdf":
				body, filename, err = exporter.PDF(res)
				if err != nil {
					return err
				}
			default:
				return cli.Exit("unknown format: "+format, 1)
			}

			out := c.String("out")
			if out == "" {
				out = filename
			}
			if err := os.WriteFile(out, body, 0644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			logging.Log.Infof("Wrote report to %s", out)
			return nil
		},
	}
}

func extractPDF(path string) (string, error) {
	text, err := extractor.ExtractText(path)
	switch {
	case errors.Is(err, extractor.ErrEncrypted):
		return "", cli.Exit(path+" is encrypted and cannot be processed", 1)
	case errors.Is(err, extractor.ErrNoText):
		return "", cli.Exit("no text could be extracted from "+path+"; it might be a scanned document", 1)
	case err != nil:
		return "", err
	}
	return text, nil
}

func printSummary(s comparator.Summary) {
	fmt.Printf("Total elements: %d\n", s.TotalElements)
	fmt.Printf("  Additions:     %d (%.1f%%, %d words)\n", s.Additions.Count, s.Additions.Percentage, s.Additions.Words)
	fmt.Printf("  Deletions:     %d (%.1f%%, %d words)\n", s.Deletions.Count, s.Deletions.Percentage, s.Deletions.Words)
	fmt.Printf("  Modifications: %d (%.1f%%, %d -> %d words)\n", s.Modifications.Count, s.Modifications.Percentage, s.Modifications.WordsOld, s.Modifications.WordsNew)
	fmt.Printf("  Unchanged:     %d (%.1f%%)\n", s.Unchanged.Count, s.Unchanged.Percentage)
}
