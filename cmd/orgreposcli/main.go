// Package main implements command line client listing github organization members and their languages.
package main

import (
	"os"
	"time"

	"github.com/m-zajac/orgrepos/internal/bootstrap"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Out = os.Stderr
	l.Level = logrus.WarnLevel

	newService := func(conf bootstrap.Config, l logrus.FieldLogger) (Service, bootstrap.Closer, error) {
		return bootstrap.NewService(conf, 10*time.Minute, l)
	}

	cmd := newRootCmd(newService, l)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
