package main

import (
    "foodlog/config"
    "foodlog/routes"
)

func main() {
    config.InitDB()
    r := routes.SetupRouter(config.DB)
    r.Run(":8080")
}
