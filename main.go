package main

import "gitlab.com/begraf/ikonwerk/cmd"

func main() {
	cmd.Execute()
}
