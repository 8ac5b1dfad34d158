package main

import "jsspec/cmd"

func main() {
	cmd.Execute()
}
