package main

import "github.com/whitemassif/website/internal/cli"

func main() {
	cli.Execute()
}
