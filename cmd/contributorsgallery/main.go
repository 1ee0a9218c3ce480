// Package main runs the contributor gallery web ui.
package main

import (
	"context"
	netHttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-zajac/contributorgallery/internal/api/http"
	"github.com/m-zajac/contributorgallery/internal/web"
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

	sessions, err := web.NewSessions(conf.GallerySessionCacheSize)
	if err != nil {
		l.Fatalf("couldn't create sessions store: %v", err)
	}
	proxyClient := web.NewProxyClient(
		&netHttp.Client{
			Timeout: 60 * time.Second,
		},
		conf.ProxyAPIURL,
	)
	handler := web.NewHandler(
		proxyClient,
		sessions,
		conf.GalleryRefreshInterval,
		l.WithField("component", "gallery"),
	)

	mux := netHttp.NewServeMux()
	web.RegisterRoutes(mux, handler)

	var h netHttp.Handler = mux
	h = http.NewRecoveryMiddleware(h, l.WithField("component", "recovery"))
	h = http.NewLoggingMiddleware(h, l.WithField("component", "access"))

	server := http.NewServer(
		conf.GalleryServerAddress,
		h,
		l.WithField("component", "httpServer"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server.Run(ctx)
}
