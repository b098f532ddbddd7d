package main

import "github.com/mvp-joe/tagex/internal/cli"

func main() {
	cli.Execute()
}
