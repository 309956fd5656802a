package main

import (
	"takubot/bot"
)

func main() {
	bot.Start()
}
