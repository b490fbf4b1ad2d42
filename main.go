package main

import "github.com/moyu-x/similar-file/cmd"

func main() {
	cmd.Execute()
}
