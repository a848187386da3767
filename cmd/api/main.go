package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"alphaview/api"
	"alphaview/internal/db"
	"alphaview/internal/repository"
	"alphaview/internal/resolver"
	"alphaview/internal/static"
	"alphaview/internal/util"

	"github.com/golang/glog"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config")
	migrate := flag.Bool("migrate", false, "apply database migrations before serving")
	flag.Parse()
	defer glog.Flush()

	cfg, err := util.LoadConfig(*configPath)
	if err != nil {
		glog.Fatal(err)
	}

	dbConn, err := db.New(cfg.Database.Driver, cfg.Database.Dsn)
	if err != nil {
		glog.Fatal(err)
	}
	defer dbConn.Close()

	if *migrate {
		if err := db.Migrate(dbConn, cfg.Database.Driver); err != nil {
			glog.Fatal(err)
		}
	}

	favoriteRepository, err := repository.NewFavoriteRepository(cfg.Database.Driver)
	if err != nil {
		glog.Fatal(err)
	}
	alphaVantageRepository := repository.NewAlphaVantageRepository(
		&http.Client{Timeout: cfg.AlphaVantage.Timeout},
		cfg.AlphaVantage.BaseURL,
		cfg.AlphaVantage.ApiKey,
	)
	tickerRepository := repository.NewTickerRepository(static.FS, static.TickerReferencePath)

	r := resolver.NewResolver(
		dbConn,
		alphaVantageRepository,
		favoriteRepository,
		tickerRepository,
	)

	router, err := api.NewRouter(api.ApiConfig{
		Users:      cfg.Users,
		BlockedIps: cfg.BlockedIps,
	}, r)
	if err != nil {
		glog.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = api.StartApi(ctx, cfg.Port, router)
	if err != nil {
		glog.Fatal(err)
	}
}
