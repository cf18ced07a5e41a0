package main

import (
	"time"

	"github.com/m-zajac/orgrepos/internal/bootstrap"
)

// Config is the container for app configuration
type Config struct {
	bootstrap.Config

	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// HTTPRequestTimeout - timeout for a single http request handling
	HTTPRequestTimeout time.Duration `default:"5m"`

	// GRPCServerAddress - listen address for grpc server. If empty, grpc server is disabled
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// ServiceResponseTimeout - timeout for service execution
	ServiceResponseTimeout time.Duration `default:"4m"`

	// LogLevel - logrus log level
	LogLevel string `default:"info"`
}
