package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yigit/unidash/internal/pkg/kvstore"
)

func main() {
	app := newApp(os.Stdout, os.Stderr, func(path string) (kvstore.Store, error) {
		if path == "" {
			var err error
			if path, err = kvstore.DefaultPath(); err != nil {
				return nil, err
			}
		}
		return kvstore.OpenFileStore(path)
	})

	if err := app.Run(os.Args); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
