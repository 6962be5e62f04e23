package main

import "github.com/jsphweid/basscard/cmd"

func main() {
	cmd.Execute()
}
