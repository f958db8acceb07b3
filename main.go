package main

import "film-catalog/cmd"

func main() {
	cmd.Execute()
}
