package http

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/astria-api/astria-go/pkg/astria"
)

// ParseProxy splits a "host:port" proxy setting on its first colon.
func ParseProxy(proxy string) (address string, port int, err error) {
	address, rawPort, found := strings.Cut(proxy, ":")
	if !found || address == "" {
		return "", 0, fmt.Errorf("%w: %q", astria.ErrInvalidProxy, proxy)
	}

	port, err = strconv.Atoi(rawPort)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("%w: %q", astria.ErrInvalidProxy, proxy)
	}

	return address, port, nil
}

// ProxyURL converts a "host:port" proxy setting into the URL handed to the transport.
func ProxyURL(proxy string) (*url.URL, error) {
	address, port, err := ParseProxy(proxy)
	if err != nil {
		return nil, err
	}

	return &url.URL{Scheme: "http", Host: net.JoinHostPort(address, strconv.Itoa(port))}, nil
}
