package main

import "ledgerq/internal/cli"

func main() {
	cli.Execute()
}
