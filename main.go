package main

import "BIOSECURE/cmd"

func main() {
	cmd.Execute()
}
