package config

import (
	"net"
	"net/url"
	"strconv"
)

// BaseURL builds the root URL requests are sent to from the server, port and
// SSL settings.
func (c *Configuration) BaseURL() (*url.URL, error) {
	server, ok := c.Server()
	if !ok || server == "" {
		return nil, ErrNoServer
	}

	scheme := "http"
	if c.useSSL {
		scheme = "https"
	}

	host := server
	if port, ok := c.Port(); ok {
		host = net.JoinHostPort(server, strconv.Itoa(port))
	}

	return &url.URL{Scheme: scheme, Host: host}, nil
}
