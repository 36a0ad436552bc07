package config

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks every field invariant of c.
func (c *Configuration) Validate() error {
	return validation.Errors{
		KeyCacheKey: validation.Validate(c.cacheKey, validation.By(containsURLPlaceholder)),
		KeyPort:     validation.Validate(c.port, validation.Min(0), validation.Max(65535)),
		KeyTimeout:  validation.Validate(c.timeout, validation.Min(0)),
	}.Filter()
}

func validateCacheKey(key string) error {
	return validation.Errors{
		KeyCacheKey: validation.Validate(key, validation.By(containsURLPlaceholder)),
	}.Filter()
}

func containsURLPlaceholder(value interface{}) error {
	key, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if !strings.Contains(key, URLPlaceholder) {
		return validation.NewError("validation_missing_url_placeholder", "must contain the {url} placeholder")
	}

	return nil
}
