package main

import "github.com/aalvaropc/soonpage/internal/cli"

func main() {
	cli.Execute()
}
