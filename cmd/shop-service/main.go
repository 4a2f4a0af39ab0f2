package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/foodcart/internal/config"
	"github.com/MikeMC777/foodcart/internal/health"
	"github.com/MikeMC777/foodcart/internal/shop"
)

// @title        Food Cart API
// @version      1.0
// @description  Account, catalog, cart and order history for the food-ordering app.
// @BasePath     /
func main() {
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := shop.Open(ctx, cfg, slog.Default())
	if err != nil {
		log.Fatalf("open shop: %v", err)
	}
	defer s.Close()

	hs := health.New()
	gl, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("grpc listen: %v", err)
	}
	go func() {
		if err := hs.Serve(gl); err != nil {
			log.Printf("grpc health stopped: %v", err)
		}
	}()
	hs.SetServing(true)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: newRouter(s)}
	go func() {
		log.Printf("shop-service listening on %s (grpc health on %s)", cfg.HTTPAddr, cfg.GRPCAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shop-service shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	hs.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
}
