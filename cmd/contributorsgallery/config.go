package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the container for gallery configuration
type Config struct {
	// GalleryServerAddress - listen address for http server
	GalleryServerAddress string `default:"0.0.0.0:3000"`

	// ProxyAPIURL - contributors proxy api root
	ProxyAPIURL string `default:"http://localhost:5000/api"`

	// GallerySessionCacheSize - maximum number of browser sessions kept in memory
	GallerySessionCacheSize int `default:"10000"`

	// GalleryRefreshInterval - page reload interval while search is loading
	GalleryRefreshInterval time.Duration `default:"1s"`

	// LogLevel - logrus level name
	LogLevel string `default:"info"`
}

func loadConfig() (Config, error) {
	var conf Config
	err := envconfig.Process("", &conf)
	return conf, err
}
