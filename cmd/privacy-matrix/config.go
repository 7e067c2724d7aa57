// Config loading for the privacy-matrix CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/casks-mutters/web3-privacy-matrix/pkg/types"
)

// Config keys recognized in a --config YAML file. Each report option
// key sets the default for the flag of the same name; explicit flags
// always win.
const (
	cfgKeyBackend      = "backend"
	cfgKeyStack        = "stack"
	cfgKeyFormat       = "format"
	cfgKeyIncludeScore = "include_score"
	cfgKeySortBy       = "sort_by"
	cfgKeyDescending   = "descending"
)

// configValues wraps the loaded configuration. Option lookups report
// whether the key was present in the file, so flag defaults stay in
// charge when no config is given.
type configValues struct {
	v *viper.Viper
}

// loadConfig reads the YAML file at path using Viper. Configuration is
// opt-in: with an empty path nothing is read and every option keeps its
// flag default. A --config path that cannot be read is an error.
func loadConfig(path string) (*configValues, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &configValues{v: v}, nil
}

// backend returns the configured backend name, defaulting to sqlite.
func (c *configValues) backend() string {
	return c.v.GetString(cfgKeyBackend)
}

// getString returns the string value for key and whether it was set.
func (c *configValues) getString(key string) (string, bool) {
	if !c.v.InConfig(key) {
		return "", false
	}
	return c.v.GetString(key), true
}

// getBool returns the boolean value for key and whether it was set.
func (c *configValues) getBool(key string) (bool, bool) {
	if !c.v.InConfig(key) {
		return false, false
	}
	return c.v.GetBool(key), true
}
