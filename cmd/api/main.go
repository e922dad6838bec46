package main

import (
	"github.com/giovaniif/ordersystem/config"
)

func main() {
	StartServer(config.Load())
}
