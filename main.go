package main

import "github.com/moviegraph/moviegraph/cmd"

func main() {
	cmd.Execute()
}
