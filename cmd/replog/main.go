package main

import "github.com/replog-dev/replog/internal/cli"

func main() {
	cli.Execute()
}
