package main

import (
	"log"

	"InkBoard/internal/ui"
)

func main() {
	log.Println("[APP] Starting InkBoard")
	ui.RunApp()
}
