package main

import "railops/internal/app/server"

func main() {
	server.Run()
}
