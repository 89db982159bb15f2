// Package main provides the nexus CLI.
package main

import "github.com/mesh-intelligence/nexus/internal/cli"

func main() {
	cli.Execute()
}
