package config

import (
	"strings"
	"time"
)

// Version is the release of this client library.
const Version = "1.2.0"

const (
	// DemoServer is the public OSRM instance used when the server is set to Demo.
	DemoServer = "router.project-osrm.org"

	// URLPlaceholder marks where the request URL goes in a cache key template.
	URLPlaceholder = "{url}"

	// DefaultTimeout is the request timeout in seconds of a new Configuration.
	DefaultTimeout = 3

	// DefaultCacheKey prefixes the request URL with a short tag.
	DefaultCacheKey = "osrm:" + URLPlaceholder

	// DefaultUserAgent names this library and its release.
	DefaultUserAgent = "OSRMGoClient/" + Version
)

// Hook is a zero-argument callback run around each request by the transport.
type Hook func()

type demoServer struct{}

// Demo requests the public demo server. It is a distinct value so that a
// host literally named "demo" is never mistaken for it.
var Demo = demoServer{}

func (demoServer) String() string { return ":demo" }

// Configuration holds the settings an OSRM client reads before each request:
// where the server is, how long to wait, which hooks to run and where to
// cache responses. The zero value is not ready for use; start from New.
type Configuration struct {
	server        *string
	port          *int
	useSSL        bool
	timeout       int
	userAgent     string
	beforeRequest Hook
	afterRequest  Hook
	cache         Cache
	cacheKey      string
}

// New returns a Configuration with every field at its default.
func New() *Configuration {
	return &Configuration{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
		cacheKey:  DefaultCacheKey,
	}
}

// Server returns the configured host and whether one is set.
func (c *Configuration) Server() (string, bool) {
	if c.server == nil {
		return "", false
	}
	return *c.server, true
}

// SetServer stores host verbatim. "demo" is an ordinary host name here, use
// SetDemoServer for the demo instance.
func (c *Configuration) SetServer(host string) {
	c.server = &host
}

// SetDemoServer points the client at DemoServer.
func (c *Configuration) SetDemoServer() {
	c.SetServer(DemoServer)
}

func (c *Configuration) ClearServer() {
	c.server = nil
}

// UseDemoServer reports whether the server is DemoServer, however it was set.
func (c *Configuration) UseDemoServer() bool {
	return c.server != nil && *c.server == DemoServer
}

// Port returns the configured port and whether one is set.
func (c *Configuration) Port() (int, bool) {
	if c.port == nil {
		return 0, false
	}
	return *c.port, true
}

// SetPort stores port as given. Range checks are left to Validate.
func (c *Configuration) SetPort(port int) {
	c.port = &port
}

// ClearPort leaves the port unset so the scheme default applies.
func (c *Configuration) ClearPort() {
	c.port = nil
}

// UseSSL reports whether requests go over https.
func (c *Configuration) UseSSL() bool {
	return c.useSSL
}

func (c *Configuration) SetUseSSL(useSSL bool) {
	c.useSSL = useSSL
}

// Timeout is the request timeout in whole seconds.
func (c *Configuration) Timeout() int {
	return c.timeout
}

func (c *Configuration) TimeoutDuration() time.Duration {
	return time.Duration(c.timeout) * time.Second
}

func (c *Configuration) SetTimeout(seconds int) {
	c.timeout = seconds
}

func (c *Configuration) UserAgent() string {
	return c.userAgent
}

func (c *Configuration) SetUserAgent(userAgent string) {
	c.userAgent = userAgent
}

func (c *Configuration) BeforeRequest() Hook {
	return c.beforeRequest
}

// SetBeforeRequest stores the hook run before each request. Nil removes it.
func (c *Configuration) SetBeforeRequest(hook Hook) {
	c.beforeRequest = hook
}

func (c *Configuration) AfterRequest() Hook {
	return c.afterRequest
}

// SetAfterRequest stores the hook run after each request. Nil removes it.
func (c *Configuration) SetAfterRequest(hook Hook) {
	c.afterRequest = hook
}

// Cache returns the store shared with the caching layer, or nil when caching
// is disabled.
func (c *Configuration) Cache() Cache {
	return c.cache
}

// SetCache installs the response store. Nil disables caching.
func (c *Configuration) SetCache(cache Cache) {
	c.cache = cache
}

func (c *Configuration) CacheKey() string {
	return c.cacheKey
}

// SetCacheKey replaces the cache key template. A template without the {url}
// placeholder is rejected and the previous one is kept.
func (c *Configuration) SetCacheKey(key string) error {
	if err := validateCacheKey(key); err != nil {
		return err
	}
	c.cacheKey = key
	return nil
}

// CacheKeyFor renders the cache key for a request URL.
func (c *Configuration) CacheKeyFor(url string) string {
	return strings.ReplaceAll(c.cacheKey, URLPlaceholder, url)
}

// Clone returns a copy that can be changed without affecting c. Hooks and the
// cache are references and stay shared.
func (c *Configuration) Clone() *Configuration {
	clone := *c
	if c.server != nil {
		server := *c.server
		clone.server = &server
	}
	if c.port != nil {
		port := *c.port
		clone.port = &port
	}
	return &clone
}
