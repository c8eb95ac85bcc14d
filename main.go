package main

import (
	"twitch-app-api/cmd"

	_ "go.uber.org/automaxprocs"
)

func main() {
	cmd.Execute()
}
