package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/gen/ent"
	"github.com/lacriee/prices-tracker/internal/archive"
	"github.com/lacriee/prices-tracker/internal/common"
	"github.com/lacriee/prices-tracker/internal/export"
	"github.com/lacriee/prices-tracker/internal/ingest"
	processor "github.com/lacriee/prices-tracker/internal/pipeline"
	"github.com/lacriee/prices-tracker/internal/renderer"
	repo "github.com/lacriee/prices-tracker/internal/repository"
)

// fileList collects repeated --file flags as vendor=path pairs.
type fileList []string

func (f *fileList) String() string { return strings.Join(*f, ",") }

func (f *fileList) Set(v string) error {
	*f = append(*f, v)
	return nil
}

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

type job struct {
	vendor constants.Vendor
	path   string
}

type processFunc func(ctx context.Context, vendor constants.Vendor, filename string, content []byte, fallbackDate string) (*processor.Result, error)

// runJobs processes the documents concurrently. Documents are independent:
// a plain group keeps one document's failure from canceling the context of
// its siblings, and Wait reports the first failure after all are done.
func runJobs(ctx context.Context, do processFunc, jobs []job, fallbackDate string) ([]*processor.Result, error) {
	var g errgroup.Group
	results := make([]*processor.Result, len(jobs))
	for i, j := range jobs {
		g.Go(func() error {
			content, err := os.ReadFile(j.path)
			if err != nil {
				return fmt.Errorf("%s: %w", j.path, err)
			}
			res, err := do(ctx, j.vendor, filepath.Base(j.path), content, fallbackDate)
			if err != nil {
				return fmt.Errorf("%s (%s): %w", j.path, j.vendor, err)
			}
			results[i] = res
			return nil
		})
	}
	return results, g.Wait()
}

func main() {
	var files fileList
	flag.Var(&files, "file", "document to process as VENDOR=PATH (repeatable)")
	var (
		vendorFlag = flag.String("vendor", "", "vendor for --file values given without a VENDOR= prefix")
		dateFlag   = flag.String("date", "", "fallback price date when the document carries none (YYYY-MM-DD, DD/MM/YYYY or DD.MM.YYYY)")
		inmem      = flag.Bool("inmem", false, "use an in-memory SQLite database instead of Postgres")
		out        = flag.String("out", "", "write an XLSX of the loaded rows to this path (optional)")
		dir        = flag.String("dir", "", "drop directory laid out as <dir>/<vendor>/<file> to scan for documents")
		watch      = flag.Bool("watch", false, "keep watching --dir and process documents as they land")
	)
	flag.Parse()

	if len(files) == 0 && *dir == "" {
		printError("Error: at least one --file or a --dir is required\n")
		printError("Usage: prices-batch --file AUDIERNE=cours.tokens.json --file DEMARNE=mercuriale.xlsx [--date 2024-01-15] [--inmem] [--out prices.xlsx]\n")
		printError("       prices-batch --dir ./drop [--watch] [--inmem]\n")
		os.Exit(1)
	}
	if *watch && *dir == "" {
		printError("Error: --watch requires --dir\n")
		os.Exit(1)
	}

	jobs := make([]job, 0, len(files))
	for _, spec := range files {
		vendorName, path := *vendorFlag, spec
		if i := strings.IndexByte(spec, '='); i > 0 {
			vendorName, path = spec[:i], spec[i+1:]
		}
		vendor, ok := constants.ParseVendor(vendorName)
		if !ok {
			printError("Error: unknown vendor %q for file %s (known: %s)\n", vendorName, path, strings.Join(constants.VendorNames(), ", "))
			os.Exit(1)
		}
		jobs = append(jobs, job{vendor: vendor, path: path})
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cfg := common.LoadConfig()

	if *dir != "" {
		found, stats, err := ingest.ScanDropDir(*dir)
		if err != nil {
			printError("Error: scanning %s: %v\n", *dir, err)
			os.Exit(1)
		}
		logger.Info("drop directory scanned", "dir", *dir, "matched", stats.Matched, "skipped", stats.Skipped, "failed", stats.Failed)
		for _, d := range found {
			jobs = append(jobs, job{vendor: d.Vendor, path: d.Path})
		}
	}

	var entc *ent.Client
	if *inmem {
		client, err := repo.OpenInMemory(ctx, logger)
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			os.Exit(1)
		}
		entc = client
		defer func() { _ = entc.Close() }()
	} else {
		if err := cfg.Validate(); err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
		client, pool, err := repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		entc = client
		defer repo.Close(client, pool, logger)
	}

	filesRepo := repo.NewSourceFileRepository(entc, logger)
	jobsRepo := repo.NewImportJobRepository(entc, logger)
	recordsRepo := repo.NewPriceRecordRepository(entc, logger)
	store := archive.NewStore(cfg.Archive.RootDir, logger)

	proc := processor.NewProcessor(logger, renderer.JSONRenderer{}, store, filesRepo, jobsRepo, recordsRepo)

	results, err := runJobs(ctx, proc.ProcessDocument, jobs, *dateFlag)

	if *watch {
		evCh, errCh, werr := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Root:     *dir,
			Debounce: 500 * time.Millisecond,
		})
		if werr != nil {
			logger.Error("failed to start watcher", "error", werr)
			os.Exit(1)
		}
		logger.Info("watching drop directory", "dir", *dir)
	watchLoop:
		for {
			select {
			case <-ctx.Done():
				break watchLoop
			case d, ok := <-evCh:
				if !ok {
					break watchLoop
				}
				content, readErr := os.ReadFile(d.Path)
				if readErr != nil {
					logger.Error("failed to read dropped file", "path", d.Path, "error", readErr)
					continue
				}
				res, procErr := proc.ProcessDocument(ctx, d.Vendor, filepath.Base(d.Path), content, *dateFlag)
				if procErr != nil {
					logger.Error("failed to process dropped file", "path", d.Path, "vendor", d.Vendor, "error", procErr)
					continue
				}
				results = append(results, res)
			case werr, ok := <-errCh:
				if ok && werr != nil {
					logger.Error("watcher error", "error", werr)
				}
			}
		}
	}

	processed, loaded, unrecognized := 0, 0, 0
	var minDate, maxDate time.Time
	for _, res := range results {
		if res == nil {
			continue
		}
		processed++
		loaded += res.RowsLoaded
		unrecognized += res.RowsUnrecognized
		if minDate.IsZero() || res.PriceDate.Before(minDate) {
			minDate = res.PriceDate
		}
		if res.PriceDate.After(maxDate) {
			maxDate = res.PriceDate
		}
	}
	if err != nil {
		logger.Error("batch run had failures", "error", err)
	}

	if *out != "" && processed > 0 {
		// ctx may already be canceled after a watch-mode interrupt
		exportService := export.NewService(recordsRepo, logger)
		xlsxBytes, exportErr := exportService.ExportPricesXLSX(context.Background(), minDate, maxDate, nil)
		if exportErr != nil {
			logger.Error("failed to export prices", "error", exportErr)
			os.Exit(1)
		}
		if writeErr := os.WriteFile(*out, xlsxBytes, 0644); writeErr != nil {
			logger.Error("failed to write output file", "error", writeErr)
			os.Exit(1)
		}
		logger.Info("export written", "output", *out)
	}

	logger.Info("batch processing complete",
		"files", len(jobs),
		"processed", processed,
		"rows_loaded", loaded,
		"rows_unrecognized", unrecognized)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files processed: %d/%d\n", processed, len(jobs))
	fmt.Printf("- Rows loaded: %d\n", loaded)
	fmt.Printf("- Rows without a recognized category: %d\n", unrecognized)
	if *out != "" && processed > 0 {
		fmt.Printf("- Output: %s\n", *out)
	}
	if err != nil {
		os.Exit(1)
	}
}
