package main

import "github.com/unitgraph/unitgraph/cmd"

func main() {
	cmd.Execute()
}
