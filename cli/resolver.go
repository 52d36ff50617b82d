package cli

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/defiro/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from
// the mapping called name in a YAML document.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve("config"), "/path/to/config.yaml")
//
// Flag names are the keys of the mapping, written either with hyphens (as
// on the command line) or with underscores:
//
//	config:
//	  log-level: debug
//	  log_format: text
//	  log-pretty: false
//
// A missing mapping configures nothing, and a malformed document is logged
// and ignored. Command-line flags override config file values.
func resolve(name string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		conf, err := parseConfig(data, name)
		if err != nil {
			log.Warn("ignoring malformed configuration",
				slog.String("mapping", name),
				slog.Any("error", err),
			)

			return config{}, nil
		}

		return conf, nil
	}
}

// parseConfig decodes the mapping called name from the YAML document data.
func parseConfig(data []byte, name string) (config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	mapping, ok := doc[name].(map[string]any)
	if !ok {
		return config{}, nil
	}

	conf := make(config, len(mapping))
	for key, val := range mapping {
		conf[key] = flagValue(val)
	}

	return conf, nil
}

// flagValue converts a decoded YAML value to a value Kong can map onto a
// flag. Kong parses numbers from their string form.
func flagValue(val any) any {
	switch v := val.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		list := make([]any, len(v))
		for i, elem := range v {
			list[i] = flagValue(elem)
		}

		return list
	default:
		return v
	}
}

// config implements [kong.Resolver] for YAML configuration files.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	value, _ := r.value(flag.Name)

	return value, nil
}

// value returns the configured value of the named flag, trying the
// underscore form of the name if the hyphenated form is absent.
func (r config) value(name string) (any, bool) {
	if value, ok := r[name]; ok {
		return value, true
	}

	value, ok := r[strings.ReplaceAll(name, "-", "_")]

	return value, ok
}
