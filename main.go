package main

import "github.com/user/play-gallery-cli/cmd"

func main() {
	cmd.Execute()
}
