package main

import "github.com/agusx1211/rulebook/internal/cli"

func main() {
	cli.Execute()
}
