package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clambin/blinkq"
	"github.com/clambin/blinkq/internal/configuration"
	"github.com/clambin/blinkq/internal/ledsetter"
	"github.com/clambin/blinkq/internal/library"
	"github.com/clambin/blinkq/internal/player"
	"github.com/clambin/blinkq/internal/serialpin"
	"github.com/clambin/blinkq/internal/server"
	"github.com/clambin/blinkq/pattern/morse"
	"github.com/clambin/blinkq/version"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := configuration.GetConfigFromArgs(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.WithField("version", version.BuildVersion).Info("blinkq starting")

	setter, err := makeSetter(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to open LED")
	}

	lib, err := library.New(cfg.PatternFile)
	if err != nil {
		log.WithError(err).Fatal("failed to load pattern file")
	}

	p := player.New(blinkq.New(setter, cfg.ActiveLow, cfg.Capacity), cfg.Interval)
	s := server.New(p, lib)

	if cfg.Message != "" {
		patterns, err2 := morse.Encode(cfg.Message)
		if err2 != nil {
			log.WithError(err2).Fatal("invalid startup message")
		}
		p.Enqueue(patterns...)
	}

	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer done()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return p.Run(ctx) })
	g.Go(func() error { return lib.Watch(ctx) })
	runHTTPServer(ctx, g, fmt.Sprintf(":%d", cfg.Port), s.MakeRouter())

	if err = g.Wait(); err != nil {
		log.WithError(err).Fatal("blinkq failed")
	}
	log.Info("blinkq exiting")
}

func makeSetter(cfg configuration.Configuration) (blinkq.Setter, error) {
	if cfg.SerialDevice != "" {
		return serialpin.New(cfg.SerialDevice)
	}
	return &ledsetter.Setter{LEDPath: cfg.LedPath}, nil
}

func runHTTPServer(ctx context.Context, g *errgroup.Group, addr string, h http.Handler) {
	s := &http.Server{Addr: addr, Handler: h}
	g.Go(func() error {
		err := s.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := s.Shutdown(stopCtx)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		return err
	})
}
