// main is the entry point for the weightexile CLI.
package main

import (
	"github.com/huangsam/weightexile/cmd"
	"github.com/huangsam/weightexile/internal/contract"
	"github.com/huangsam/weightexile/internal/iocache"
)

func main() {
	defer iocache.CloseCaching()
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		iocache.CloseCaching()
		contract.LogFatal("Error running weightexile", err)
	}
}
