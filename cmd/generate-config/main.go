package main

import (
	"os"

	"blackjackdealer-server/internal/config"

	"gopkg.in/yaml.v2"
)

// prints the default configuration as a starting point for config.yaml
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
