/*
Copyright 2026 the GoREST Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/gorest-qa/conformance/pkg/logging"
	"github.com/gorest-qa/conformance/pkg/twin"
)

const shutdownTimeout = 5 * time.Second

type options struct {
	port    int
	token   string
	verbose bool
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.IntVar(&o.port, "port", 8080, "Port to listen on.")
	f.StringVar(&o.token, "token", twin.DefaultToken, "Bearer token accepted for writes.")
	f.BoolVar(&o.verbose, "verbose", false, "Log every request.")
}

func run(ctx context.Context, o *options, logger *logging.Logger) error {
	server := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(o.port)),
		Handler:           twin.New(twin.Options{Token: o.token, Logger: logger}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		errs <- server.ListenAndServe()
	}()

	logger.Infof("twin listening on %s", server.Addr)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func main() {
	var o options

	o.AddFlags(pflag.CommandLine)

	pflag.Parse()

	level := zapcore.InfoLevel
	if o.verbose {
		level = zapcore.DebugLevel
	}

	logger, err := logging.New(logging.Options{
		Console: os.Stderr,
		Level:   level,
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, &o, logger); err != nil {
		logger.Errorf("%v", err)
		_ = logger.Close()

		os.Exit(1) //nolint:gocritic
	}

	_ = logger.Close()
}
