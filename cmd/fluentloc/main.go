package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"fluentloc/internal/application"
	"fluentloc/internal/config"
	"fluentloc/internal/domain/entities"
	"fluentloc/internal/infrastructure/database"
	"fluentloc/internal/infrastructure/i18n"
	"fluentloc/internal/infrastructure/resources"
	"fluentloc/internal/ports/output"
	"fluentloc/pkg/culture"
	"fluentloc/pkg/logger"
)

func main() {
	list := flag.Bool("list", false, "list resource names and cultures")
	render := flag.Bool("render", false, "render the resource as a template; extra args are key=value pairs")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: fluentloc [-list] [-render] <resourceName> [culture] [key=value ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*list, *render, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "fluentloc:", err)
		os.Exit(1)
	}
}

func run(list, render bool, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Environment); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	log := logger.Get()
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	source, closeSource, err := newSource(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSource()

	catalog := application.NewCatalog(source,
		application.WithLogger(log),
		application.WithAmbientCulture(cfg.AmbientCulture),
	)
	// A load failure is already logged; lookups keep serving empty strings.
	_ = catalog.Load(ctx)

	if list {
		printInventory(catalog)
		return nil
	}
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("missing resource name")
	}

	name := entities.ResourceName(args[0])
	ci := cfg.AmbientCulture
	rest := args[1:]
	if len(rest) > 0 && !strings.Contains(rest[0], "=") {
		if ci, err = culture.Parse(rest[0]); err != nil {
			return err
		}
		rest = rest[1:]
	}

	if render {
		bundle := i18n.NewBundle(catalog.Mappings(), entities.DefaultCulture, log)
		translator := i18n.NewTranslator(bundle, entities.DefaultCulture, log)
		fmt.Println(translator.T(ci, name, templateData(rest)))
		return nil
	}
	fmt.Println(catalog.GetLocalizedStringFor(ci, name))
	return nil
}

func newSource(ctx context.Context, cfg *config.Config, log *zap.Logger) (output.CatalogSource, func(), error) {
	if !cfg.UseDatabase() {
		return resources.NewFileSource(cfg.ResourcePath), func() {}, nil
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, fmt.Errorf("database: %w", err)
	}
	return database.NewResourceRepository(pool), pool.Close, nil
}

func templateData(pairs []string) map[string]any {
	if len(pairs) == 0 {
		return nil
	}
	data := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, _ := strings.Cut(p, "=")
		data[k] = v
	}
	return data
}

func printInventory(catalog *application.Catalog) {
	for _, name := range catalog.Resources() {
		fmt.Println(name)
	}
	cultures := make([]string, 0)
	for _, ci := range catalog.Cultures() {
		cultures = append(cultures, ci.String())
	}
	fmt.Println("cultures:", strings.Join(cultures, ", "))
}
