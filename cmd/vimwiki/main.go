package main

import "vimwiki/cmd/vimwiki/cmd"

func main() {
	cmd.Execute()
}
