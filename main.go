package main

import "github.com/gaurav-prasanna/partstream/cmd"

func main() {
	cmd.Execute()
}
