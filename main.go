package main

import "github.com/masm-tools/masmtool/cli"

func main() {
	cli.Execute()
}
