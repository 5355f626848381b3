package main

import "bizsuite/internal/app/server"

func main() {
	server.Run()
}
