package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pitabwire/intlbridge"
	"github.com/pitabwire/intlbridge/config"
)

const (
	defaultHTTPReadTimeoutSeconds  = 15
	defaultHTTPWriteTimeoutSeconds = 15
	defaultHTTPIdleTimeoutSeconds  = 60

	shutdownGraceSeconds = 10
)

func main() {
	fs := flag.NewFlagSet("intlbridged", flag.ContinueOnError)
	port := fs.String("port", "", "listen address, overrides HTTP_PORT")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if err := run(*port); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(port string) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer stop()

	cfg, err := config.FromEnv[config.ConfigurationDefault]()
	if err != nil {
		return fmt.Errorf("could not process configuration: %w", err)
	}

	ctx = config.ToContext(ctx, &cfg)

	opts := []intlbridge.Option{intlbridge.WithConfig(&cfg)}
	if len(cfg.TranslationLanguage) > 0 {
		opts = append(opts, intlbridge.WithTranslation(cfg.TranslationsFolder, cfg.TranslationLanguage...))
	}

	host := intlbridge.NewHost(ctx, opts...)
	log := host.Log(ctx)

	if port == "" {
		port = cfg.HTTPServerPort
	}

	server := &http.Server{
		Addr:         port,
		Handler:      intlbridge.NewHTTPHandler(host),
		ReadTimeout:  defaultHTTPReadTimeoutSeconds * time.Second,
		WriteTimeout: defaultHTTPWriteTimeoutSeconds * time.Second,
		IdleTimeout:  defaultHTTPIdleTimeoutSeconds * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("address", port).Info("serving internationalization bridge")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGraceSeconds*time.Second)
		defer cancel()

		if err = server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("could not shut down cleanly")
			return err
		}
	}

	return nil
}
