package main

import "metroart/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
