// Command gridtool runs grid operations against spreadsheet or CSV files
// from the command line: smoothing, blank filling, and heatmap export.
//
// Examples:
//
//	gridtool -in fuel.xlsx -out smoothed.xlsx -op smooth -method gaussian -sigma 1.5
//	gridtool -in fuel.csv -out filled.csv -op fill -skip-first-row -skip-first-col
//	gridtool -in fuel.xlsx -heatmap heatmap.xlsx -scheme thermal
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"calibgrid/internal/config"
	"calibgrid/internal/gridio"
	"calibgrid/internal/infrastructure"
	"calibgrid/internal/services"
	"calibgrid/pkg/contracts/domain"
)

func main() {
	in := flag.String("in", "", "input file (.xlsx or .csv)")
	out := flag.String("out", "", "output file for the transformed grid (.xlsx or .csv)")
	sheet := flag.String("sheet", "", "workbook sheet name (defaults to the first sheet)")
	op := flag.String("op", "", "operation: smooth or fill (omit for heatmap-only runs)")
	method := flag.String("method", "moving_average", "smoothing method: moving_average, gaussian, bilinear")
	window := flag.String("window", "", "moving-average window size (default 3)")
	sigma := flag.String("sigma", "", "gaussian sigma (default 1.0)")
	skipFirstRow := flag.Bool("skip-first-row", false, "treat the first row as a heading")
	skipFirstCol := flag.Bool("skip-first-col", false, "treat the first column as a heading")
	heatmap := flag.String("heatmap", "", "write a color-styled workbook to this path")
	schemeFlag := flag.String("scheme", "thermal", "heatmap color scheme: thermal, automotive, viridis, grayscale")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger := infrastructure.InitializeLogger(config.LoggingConfig{Level: level, Format: "text"})

	if *in == "" {
		logger.Error("missing required -in flag")
		flag.Usage()
		os.Exit(2)
	}
	if *out == "" && *heatmap == "" {
		logger.Error("nothing to do: provide -out and/or -heatmap")
		os.Exit(2)
	}

	if err := run(logger, options{
		in: *in, out: *out, sheet: *sheet, op: *op, method: *method,
		window: *window, sigma: *sigma, heatmap: *heatmap, scheme: *schemeFlag,
		mask: domain.Mask{SkipFirstRow: *skipFirstRow, SkipFirstCol: *skipFirstCol},
	}); err != nil {
		logger.Error("gridtool failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	in, out, sheet      string
	op, method          string
	window, sigma       string
	heatmap, scheme     string
	mask                domain.Mask
}

func run(logger *slog.Logger, opts options) error {
	ctx := context.Background()

	grid, err := loadGrid(opts.in, opts.sheet)
	if err != nil {
		return err
	}
	logger.Info("loaded grid",
		slog.String("path", opts.in),
		slog.Int("rows", grid.Rows()),
		slog.Int("cols", grid.Cols()),
	)

	service := services.NewGridService(logger, nil)

	switch opts.op {
	case "":
		// Heatmap-only run; the grid passes through untransformed.
	case "smooth":
		method, err := domain.ParseSmoothingMethod(opts.method)
		if err != nil {
			return err
		}
		grid, err = service.Smooth(ctx, grid, domain.SmoothingRequest{
			Method:     method,
			WindowSize: services.CoerceWindowSize(opts.window),
			Sigma:      services.CoerceSigma(opts.sigma),
			Mask:       opts.mask,
		})
		if err != nil {
			return err
		}
		logger.Info("smoothing complete", slog.String("method", string(method)))
	case "fill":
		grid = service.Fill(ctx, grid, opts.mask)
		logger.Info("blank fill complete")
	default:
		return fmt.Errorf("unknown operation %q (want smooth or fill)", opts.op)
	}

	if opts.out != "" {
		if err := saveGrid(opts.out, opts.sheet, grid); err != nil {
			return err
		}
		logger.Info("wrote grid", slog.String("path", opts.out))
	}

	if opts.heatmap != "" {
		scheme, err := domain.ParseSchemeName(opts.scheme)
		if err != nil {
			return err
		}
		if err := gridio.SaveHeatmapXLSX(opts.heatmap, opts.sheet, grid, opts.mask, scheme); err != nil {
			return err
		}
		logger.Info("wrote heatmap", slog.String("path", opts.heatmap), slog.String("scheme", string(scheme)))
	}
	return nil
}

func loadGrid(path, sheet string) (domain.Grid, error) {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return gridio.LoadCSV(path)
	}
	return gridio.LoadXLSX(path, sheet)
}

func saveGrid(path, sheet string, grid domain.Grid) error {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return gridio.SaveCSV(path, grid)
	}
	return gridio.SaveXLSX(path, sheet, grid)
}
