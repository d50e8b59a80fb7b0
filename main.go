package main

import "github.com/kbecker21/tt-csv-matcher/cmd"

func main() {
	cmd.Execute()
}
