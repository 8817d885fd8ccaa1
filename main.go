package main

import "gbsorgapi/commands"

// @title           gbsorgapi
// @version         1.0
// @description     GBS organization assignment, resolution and attendance API

// @BasePath  /api

func main() {
	commands.Execute()
}
