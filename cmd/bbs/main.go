package main

import (
	"github.com/bornholm/bbs/internal/command"
	"github.com/bornholm/bbs/internal/command/server"
	"github.com/bornholm/bbs/internal/command/user"
)

func main() {
	command.Main(
		"bbs",
		"A minimal authenticated bulletin board",
		server.Command(),
		user.Command(),
	)
}
