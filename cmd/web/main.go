package main

import "vinixport_backend/internal/app"

func main() {
	app.Run()
}
