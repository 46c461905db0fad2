package main

import (
	"hotelier/config"
	"hotelier/di"
	"hotelier/shared/logger"
)

// @title Hotelier API
// @version 1.0
// @description Hotel management backend for customers, rooms, bookings, payments and staff.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
