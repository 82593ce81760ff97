package main

import "github.com/cppla/blogsite/cmd"

func main() {
	cmd.Execute()
}
