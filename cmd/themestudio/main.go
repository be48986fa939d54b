package main

import "github.com/emiliopalmerini/themestudio/internal/cli"

func main() {
	cli.Execute()
}
