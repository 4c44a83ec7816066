package main

import "github.com/aalvaropc/postline/internal/cli"

func main() {
	cli.Execute()
}
