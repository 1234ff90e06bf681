package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/notjagan/typechart/pkg/api"
	"github.com/notjagan/typechart/pkg/bot"
	"github.com/notjagan/typechart/pkg/config"
	"github.com/notjagan/typechart/pkg/matchup"
	"github.com/notjagan/typechart/pkg/model"
	"golang.org/x/sync/errgroup"
)

func loadTable(ctx context.Context, cfg *config.Config) (*model.Table, error) {
	switch {
	case cfg.DB.Path != "":
		return model.LoadDB(ctx, cfg.DB.Path)
	case cfg.Dataset.Path != "":
		return model.LoadFile(cfg.Dataset.Path)
	default:
		return model.Default()
	}
}

func main() {
	configPath := flag.String("config", "", "path to the TOML config file; the environment is always read")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Read(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	table, err := loadTable(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %d types.", table.Len())

	resolver := matchup.New(table)

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Discord.Token != "" {
		g.Go(func() error {
			return bot.New(*cfg, resolver).Run(ctx)
		})
	}
	if cfg.HTTP.Addr != "" {
		g.Go(func() error {
			return api.Serve(ctx, cfg.HTTP.Addr, resolver)
		})
	}

	err = g.Wait()
	if err != nil {
		log.Fatal(err)
	}
}
