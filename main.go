package main

import (
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/uno-online/server/database"
	"github.com/uno-online/server/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	addr := os.Getenv("UNO_ADDR")
	if addr == "" {
		addr = ":9090"
	}
	store := database.NewIdentityStore(identityPath())
	server := network.NewHTTPServer(addr, store)
	log.Error(server.Serve())
}

func identityPath() string {
	if path := os.Getenv("UNO_IDENTITY_FILE"); path != "" {
		return path
	}
	return "uno_identities.json"
}
