package route

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SplitRouteSpec splits a proxy route specification into its host and path.
// A routespec starting with '/' has no host and the whole string is the
// path; otherwise everything before the first '/' is the host and
// everything from that '/' onward is the path ("example.com/foo" gives
// "example.com" and "/foo"). A routespec without any '/' yields the whole
// string as host and an empty path.
func SplitRouteSpec(routespec string) (host string, path string) {
	if strings.HasPrefix(routespec, "/") {
		return "", routespec
	}

	slash := strings.Index(routespec, "/")
	if slash < 0 {
		return routespec, ""
	}

	return routespec[:slash], routespec[slash:]
}

// parseTarget extracts the address and port a route forwards to. A target
// without an explicit host and port cannot be routed to, so it is rejected
// before any object gets built.
func parseTarget(target string) (string, int32, error) {
	targetURL, err := url.Parse(target)
	if err != nil {
		return "", 0, errors.Wrapf(err, `malformed target "%s"`, target)
	}

	hostname := targetURL.Hostname()
	portText := targetURL.Port()

	if hostname == "" || portText == "" {
		return "", 0, errors.Errorf(`target "%s" needs an explicit host and port`, target)
	}

	port, err := strconv.ParseInt(portText, 10, 32)
	if err != nil {
		return "", 0, errors.Wrapf(err, `malformed port in target "%s"`, target)
	}

	return hostname, int32(port), nil
}
