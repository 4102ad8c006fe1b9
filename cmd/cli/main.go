package main

import (
	"context"
	"log"
	"os"

	"github.com/dsavelev/filevault/internal/buildinfo"
	"github.com/dsavelev/filevault/internal/cli"
	"github.com/dsavelev/filevault/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
