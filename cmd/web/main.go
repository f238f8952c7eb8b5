package main

import "cobrew_backend/internal/app"

func main() {
	app.Run()
}
