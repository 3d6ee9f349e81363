package ioconfig

import (
	"github.com/gnames/chemdb/pkg/config"
	"gopkg.in/yaml.v3"
)

// Dump renders the effective configuration as YAML. The database
// password is masked.
func Dump(cfg *config.Config) ([]byte, error) {
	c := *cfg
	if c.Database.Password != "" {
		c.Database.Password = "********"
	}
	return yaml.Marshal(c)
}
