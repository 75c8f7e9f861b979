package main

import "castingfy/internal/app"

// @title Castingfy API
// @version 1.0
// @description Casting marketplace connecting talent and producers.
// @BasePath /api/v1
func main() {
	app.Run()
}
