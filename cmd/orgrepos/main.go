// Package main runs http and grpc servers exposing github organization members and their languages.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/orgrepos/internal/api/grpc"
	"github.com/m-zajac/orgrepos/internal/api/http"
	"github.com/m-zajac/orgrepos/internal/bootstrap"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	if level, err := logrus.ParseLevel(conf.LogLevel); err == nil {
		l.Level = level
	} else {
		l.Warnf("invalid log level %q, using info", conf.LogLevel)
	}
	if conf.GithubOrganization == "" {
		l.Fatal("GITHUBORGANIZATION is required")
	}

	service, closeService, err := bootstrap.NewService(conf.Config, conf.ServiceResponseTimeout, l)
	if err != nil {
		l.Fatalf("couldn't create service: %v", err)
	}
	defer closeService()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mux := http.NewMux(service, conf.HTTPRequestTimeout, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(ctx)
	})
	if conf.GRPCServerAddress != "" {
		grpcServer := grpc.NewServer(
			grpc.NewService(service),
			conf.GRPCServerAddress,
			l.WithField("component", "grpcServer"),
		)
		g.Go(func() error {
			return grpcServer.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		l.Errorf("server error: %v", err)
		closeService()
		os.Exit(1)
	}
}
