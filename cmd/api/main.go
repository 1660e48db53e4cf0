package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"centrodrinks/internal/config"
	"centrodrinks/internal/db"
	"centrodrinks/internal/filestore"
	"centrodrinks/internal/httpserver"
	"centrodrinks/internal/localcache"
	cartrepo "centrodrinks/internal/repository/cart"
	courierrepo "centrodrinks/internal/repository/courier"
	customerrepo "centrodrinks/internal/repository/customer"
	favoriterepo "centrodrinks/internal/repository/favorite"
	locationrepo "centrodrinks/internal/repository/location"
	orderrepo "centrodrinks/internal/repository/order"
	profilerepo "centrodrinks/internal/repository/profile"
	tokenrepo "centrodrinks/internal/repository/token"
	cartsvc "centrodrinks/internal/service/cart"
	customersvc "centrodrinks/internal/service/customer"
	favoritesvc "centrodrinks/internal/service/favorite"
	locationsvc "centrodrinks/internal/service/location"
	ordersvc "centrodrinks/internal/service/order"
	profilesvc "centrodrinks/internal/service/profile"
	tracksvc "centrodrinks/internal/service/track"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	cache, err := localcache.Open(cfg.CacheDir)
	if err != nil {
		logger.Fatalf("open local cache: %v", err)
	}

	files, err := filestore.New(cfg.FileDir, cfg.FileURLHost)
	if err != nil {
		logger.Fatalf("init file store: %v", err)
	}

	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	profileRepo := profilerepo.NewPostgres(dbpool)
	favoriteRepo := favoriterepo.NewPostgres(dbpool)
	locationRepo := locationrepo.NewPostgres(dbpool)
	courierRepo := courierrepo.NewPostgres(dbpool)

	cartService := cartsvc.New(cartRepo)
	orderService := ordersvc.New(orderRepo, cartRepo, profileRepo)
	customerService := customersvc.New(customerRepo, profileRepo, tokenRepo)
	profileService := profilesvc.New(profileRepo, files)
	favoriteService := favoritesvc.New(favoriteRepo)
	locationService := locationsvc.New(locationRepo, cache, locationsvc.CoordinateGeocoder{}, logger)
	trackService := tracksvc.New(courierRepo, locationRepo, logger)

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go func() {
		for pos := range trackService.Watch(watchCtx, cfg.CourierPollPeriod) {
			logger.Printf("courier %s at %.5f,%.5f", pos.CourierID, pos.Coord.Latitude, pos.Coord.Longitude)
		}
	}()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Auth:      customerService,
		Cart:      cartService,
		Orders:    orderService,
		Profiles:  profileService,
		Locations: locationService,
		Favorites: favoriteService,
		Track:     trackService,
		FilesDir:  files.Dir(),
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
