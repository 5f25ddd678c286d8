package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	sitebuilder "github.com/novaweb/go-sitebuilder"
)

func main() {
	var (
		addr          = flag.String("addr", ":3001", "HTTP listen address")
		siteKey       = flag.String("site", "default", "site key for snapshot storage")
		storage       = flag.String("storage", sitebuilder.StorageMemory, "storage provider: memory, sqlite3, postgres")
		dsn           = flag.String("dsn", "", "database DSN for sqlite3 or postgres storage")
		cacheEnabled  = flag.Bool("cache", false, "enable read-through repository caching")
		outputDir     = flag.String("output", "./public", "directory for published site artifacts")
		baseURL       = flag.String("base-url", "", "public base URL for published page links")
		upload        = flag.String("upload", sitebuilder.UploadInline, "upload provider: inline, cloudinary")
		cloudinaryURL = flag.String("cloudinary-url", os.Getenv("CLOUDINARY_URL"), "cloudinary connection URL")
		logLevel      = flag.String("log-level", "info", "logging level")
		logFormat     = flag.String("log-format", "console", "logging format: json, console, pretty")
		importPath    = flag.String("import", "", "import a markdown document as a page, then exit")
		exportPath    = flag.String("export", "", "export the built site as a zip archive, then exit")
	)
	flag.Parse()

	cfg := sitebuilder.DefaultConfig()
	cfg.SiteKey = *siteKey
	cfg.Storage.Provider = *storage
	cfg.Storage.DSN = *dsn
	cfg.Storage.CacheEnabled = *cacheEnabled
	cfg.Publish.OutputDir = *outputDir
	cfg.Publish.BaseURL = *baseURL
	cfg.Upload.Provider = *upload
	cfg.Upload.CloudinaryURL = *cloudinaryURL
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	module, err := sitebuilder.New(cfg)
	if err != nil {
		log.Fatalf("sitebuilder: %v", err)
	}
	defer module.Close()

	ctx := context.Background()
	if err := module.Init(ctx); err != nil {
		log.Fatalf("sitebuilder: init: %v", err)
	}

	switch {
	case *importPath != "":
		if err := runImport(ctx, module, *importPath); err != nil {
			log.Fatalf("sitebuilder: import: %v", err)
		}
	case *exportPath != "":
		if err := runExport(ctx, module, *exportPath); err != nil {
			log.Fatalf("sitebuilder: export: %v", err)
		}
	default:
		runServe(module, *addr)
	}
}

func runImport(ctx context.Context, module *sitebuilder.Module, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	page, err := module.Session().ImportPage(ctx, source)
	if err != nil {
		return err
	}
	if err := module.Session().Save(ctx); err != nil {
		return err
	}
	fmt.Printf("imported page %q (%s) with %d sections\n", page.Name, page.ID, len(page.Sections))
	return nil
}

func runExport(ctx context.Context, module *sitebuilder.Module, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	result, err := module.Session().Export(ctx, out)
	if err != nil {
		return err
	}
	fmt.Printf("exported %d pages (%d bytes) to %s\n", len(result.Manifest.Pages), result.TotalBytes, path)
	return nil
}

func runServe(module *sitebuilder.Module, addr string) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-stop
		if err := module.Close(); err != nil {
			log.Printf("sitebuilder: shutdown: %v", err)
		}
	}()

	if err := module.Listen(addr); err != nil {
		log.Fatalf("sitebuilder: serve: %v", err)
	}
}
