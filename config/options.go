package config

import (
	"fmt"
	"maps"
	"slices"
)

// Option keys understood by Set and Merge.
const (
	KeyServer        = "server"
	KeyPort          = "port"
	KeyUseSSL        = "use_ssl"
	KeyTimeout       = "timeout"
	KeyUserAgent     = "user_agent"
	KeyBeforeRequest = "before_request"
	KeyAfterRequest  = "after_request"
	KeyCache         = "cache"
	KeyCacheKey      = "cache_key"
)

// Options maps option keys to proposed field values.
type Options map[string]any

type setter func(c *Configuration, value any) error

var setters = map[string]setter{
	KeyServer:        setServer,
	KeyPort:          setPort,
	KeyUseSSL:        setUseSSL,
	KeyTimeout:       setTimeout,
	KeyUserAgent:     setUserAgent,
	KeyBeforeRequest: setBeforeRequest,
	KeyAfterRequest:  setAfterRequest,
	KeyCache:         setCache,
	KeyCacheKey:      setCacheKey,
}

// Keys returns the recognized option keys in sorted order.
func Keys() []string {
	return slices.Sorted(maps.Keys(setters))
}

// IsKnown reports whether key names a configuration field.
func IsKnown(key string) bool {
	_, ok := setters[key]
	return ok
}

// Set assigns value to the field named by key, coercing it to the field's
// type first. Port and timeout take integers, floats (floored) and decimal
// strings. A nil value clears the server, port, hooks and cache, and resets
// the timeout to DefaultTimeout.
func (c *Configuration) Set(key string, value any) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
	return set(c, value)
}

// Merge applies every recognized key of opts through Set and skips the rest.
// Keys are applied in sorted order and the first failing one stops the merge;
// fields assigned before it keep their new values. Merge returns c so calls
// can be chained.
func (c *Configuration) Merge(opts Options) (*Configuration, error) {
	keys := make([]string, 0, len(opts))
	for key := range opts {
		if IsKnown(key) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	for _, key := range keys {
		if err := setters[key](c, opts[key]); err != nil {
			return c, err
		}
	}

	return c, nil
}

// Options returns the current field values keyed by option name. Unset
// fields are left out, so merging the result into New() reproduces c.
func (c *Configuration) Options() Options {
	opts := Options{
		KeyUseSSL:    c.useSSL,
		KeyTimeout:   c.timeout,
		KeyUserAgent: c.userAgent,
		KeyCacheKey:  c.cacheKey,
	}
	if server, ok := c.Server(); ok {
		opts[KeyServer] = server
	}
	if port, ok := c.Port(); ok {
		opts[KeyPort] = port
	}
	if c.beforeRequest != nil {
		opts[KeyBeforeRequest] = c.beforeRequest
	}
	if c.afterRequest != nil {
		opts[KeyAfterRequest] = c.afterRequest
	}
	if c.cache != nil {
		opts[KeyCache] = c.cache
	}
	return opts
}

func setServer(c *Configuration, value any) error {
	switch v := value.(type) {
	case nil:
		c.ClearServer()
	case demoServer:
		c.SetDemoServer()
	case string:
		c.SetServer(v)
	default:
		return &CoercionError{Key: KeyServer, Value: value, Err: ErrInvalidType}
	}
	return nil
}

func setPort(c *Configuration, value any) error {
	if value == nil {
		c.ClearPort()
		return nil
	}
	port, err := toInt(value)
	if err != nil {
		return &CoercionError{Key: KeyPort, Value: value, Err: err}
	}
	c.SetPort(port)
	return nil
}

func setUseSSL(c *Configuration, value any) error {
	c.SetUseSSL(truthy(value))
	return nil
}

// setTimeout treats nil as a request for the default.
func setTimeout(c *Configuration, value any) error {
	if value == nil {
		c.SetTimeout(DefaultTimeout)
		return nil
	}
	timeout, err := toInt(value)
	if err != nil {
		return &CoercionError{Key: KeyTimeout, Value: value, Err: err}
	}
	c.SetTimeout(timeout)
	return nil
}

func setUserAgent(c *Configuration, value any) error {
	switch v := value.(type) {
	case string:
		c.SetUserAgent(v)
	case fmt.Stringer:
		c.SetUserAgent(v.String())
	default:
		return &CoercionError{Key: KeyUserAgent, Value: value, Err: ErrInvalidType}
	}
	return nil
}

func setBeforeRequest(c *Configuration, value any) error {
	hook, err := toHook(KeyBeforeRequest, value)
	if err != nil {
		return err
	}
	c.SetBeforeRequest(hook)
	return nil
}

func setAfterRequest(c *Configuration, value any) error {
	hook, err := toHook(KeyAfterRequest, value)
	if err != nil {
		return err
	}
	c.SetAfterRequest(hook)
	return nil
}

func toHook(key string, value any) (Hook, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case Hook:
		return v, nil
	case func():
		return v, nil
	}
	return nil, &CoercionError{Key: key, Value: value, Err: ErrInvalidType}
}

func setCache(c *Configuration, value any) error {
	switch v := value.(type) {
	case nil:
		c.SetCache(nil)
	case MapCache:
		if v == nil {
			c.SetCache(nil)
			return nil
		}
		c.SetCache(v)
	case map[string]any:
		if v == nil {
			c.SetCache(nil)
			return nil
		}
		c.SetCache(MapCache(v))
	case Cache:
		c.SetCache(v)
	default:
		return &CoercionError{Key: KeyCache, Value: value, Err: ErrInvalidType}
	}
	return nil
}

func setCacheKey(c *Configuration, value any) error {
	key, ok := value.(string)
	if !ok {
		return &CoercionError{Key: KeyCacheKey, Value: value, Err: ErrInvalidType}
	}
	return c.SetCacheKey(key)
}
