package main

import "acopack/internal/cli"

func main() {
	cli.Execute()
}
