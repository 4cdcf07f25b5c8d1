package main

import "github.com/kdriscoll/menuwatch/internal/cli"

func main() {
	cli.Execute()
}
