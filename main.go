package main

import (
	"bflow/api"
	"bflow/config"
	"bflow/db"
)

func main() {
	cfg := config.Load()
	db.Open(cfg.DatabasePath)
	defer db.Close()
	api.ListenAndServe(cfg.Listen)
}
