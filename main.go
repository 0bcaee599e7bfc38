package main

import "choque/cmd"

func main() {
	cmd.Execute()
}
