package main

import (
	"net"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the container for app configuration
type Config struct {
	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `envconfig:"GITHUB_TOKEN" default:""`

	// Port - http server port
	Port string `envconfig:"PORT" default:"5000"`

	// HTTPListenHost - listen host for http server
	HTTPListenHost string `default:"0.0.0.0"`

	// GRPCServerAddress - listen address for grpc server
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com/"`

	// GithubAPIRateLimit - max frequency for github rest api calls, 0 disables limiting
	GithubAPIRateLimit float64 `default:"0"`

	// ServiceResponseTimeout - timeout for service execution, 0 disables timeout
	ServiceResponseTimeout time.Duration `default:"0"`

	// LogLevel - logrus level name
	LogLevel string `default:"info"`
}

func loadConfig() (Config, error) {
	var conf Config
	err := envconfig.Process("", &conf)
	return conf, err
}

// HTTPServerAddress returns listen address for http server.
func (c Config) HTTPServerAddress() string {
	return net.JoinHostPort(c.HTTPListenHost, c.Port)
}
