package main

// @title WeatherWear API
// @version 1.0
// @description Clothing recommendations from the current or forecast weather at a location.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
