package main

import "github.com/huffs-projects/themectl/cmd"

func main() {
	cmd.Execute()
}
