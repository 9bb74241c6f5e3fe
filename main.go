package main

import (
	"log"
	"os"
	"runtime"

	"vulkan-context/bootstrap"
	"vulkan-context/vkdriver"

	"github.com/cockroachdb/errors"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	// See documentation for functions that are only allowed to be called
	// from the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

// run bootstraps the execution context and returns the process exit status.
func run() int {
	stdout := log.New(os.Stdout, "", log.LstdFlags)

	drv, err := vkdriver.Load()
	if err != nil {
		report(err)
		return -1
	}
	defer drv.Close()

	b := bootstrap.New(drv, bootstrap.DefaultConfig(), bootstrap.WithLogger(stdout))
	ctx, err := b.Run()
	if err != nil {
		report(err)
		return -1
	}
	defer ctx.Destroy()

	return 0
}

func report(err error) {
	log.Printf("ERROR: %s", err)
	if hint := errors.FlattenHints(err); hint != "" {
		log.Printf("HINT: %s", hint)
	}
}
