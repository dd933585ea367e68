package main

import "github.com/fieldops/landing/cmd/fieldops-cli/cmd"

func main() {
	cmd.Execute()
}
