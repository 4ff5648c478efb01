package main

// General API information for swag.
//
// @title			City Lookup API
// @version		1.0
// @description	Postal and geographic data for a fixed set of cities, backed by zippopotam.us
// @host			localhost:8080
// @BasePath		/
