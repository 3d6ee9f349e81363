package main

import "github.com/gnames/chemdb/cmd"

func main() {
	cmd.Execute()
}
