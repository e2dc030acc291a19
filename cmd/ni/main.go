package main

import "ni/internal/cli"

func main() {
	cli.Execute()
}
