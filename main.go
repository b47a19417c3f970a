package main

import "github.com/user/dashreel/cmd"

func main() {
	cmd.Execute()
}
