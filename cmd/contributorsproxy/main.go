// Package main runs the contributors proxy: http api forwarding contributor listings from github api,
// plus the same operation over grpc.
package main

import (
	"context"
	netHttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/m-zajac/contributorgallery/internal/adapter/github"
	"github.com/m-zajac/contributorgallery/internal/api/grpc"
	"github.com/m-zajac/contributorgallery/internal/api/http"
	"github.com/m-zajac/contributorgallery/internal/api/http/limiter"
	"github.com/m-zajac/contributorgallery/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	conf, err := loadConfig()
	if err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		l.Fatalf("invalid log level: %v", err)
	}
	l.SetLevel(level)

	if conf.GithubAPIToken == "" {
		l.Warn("GITHUB_TOKEN not set, github api calls are unauthenticated")
	}

	httpClient := &netHttp.Client{
		Timeout:   30 * time.Second,
		Transport: limiter.NewTransport(netHttp.DefaultTransport, conf.GithubAPIRateLimit),
	}
	githubClient, err := github.NewClient(
		httpClient,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
	)
	if err != nil {
		l.Fatalf("couldn't create github client: %v", err)
	}

	service := app.NewService(
		githubClient,
		conf.ServiceResponseTimeout,
	)

	mux := http.NewMux(service, conf.ServiceResponseTimeout, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress(),
		mux,
		l.WithField("component", "httpServer"),
	)

	grpcService := grpc.NewService(service, l.WithField("component", "grpcService"))
	grpcServer := grpc.NewServer(
		grpcService,
		conf.GRPCServerAddress,
		l.WithField("component", "grpcServer"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		server.Run(ctx)
		wg.Done()
	}()
	wg.Add(1)
	go func() {
		if err := grpcServer.Run(ctx); err != nil {
			l.Fatalf("couldn't run grpc server: %v", err)
		}
		wg.Done()
	}()
	wg.Wait()
}
