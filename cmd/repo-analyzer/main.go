package main

import "repo-analyzer/src/handler/cli"

func main() {
	cli.Run()
}
