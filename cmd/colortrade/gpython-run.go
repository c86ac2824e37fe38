package main

import (
	"fmt"
	"time"

	"github.com/go-python/gpython/py"
	"github.com/pkg/errors"

	_ "github.com/2x3systems/colortrade/pyct"
	_ "github.com/go-python/gpython/stdlib"
)

// runScript executes a gpython script with the colortrade module available
func runScript(pathname string) error {
	ctx := py.NewContext(py.DefaultContextOpts())

	startTime := time.Now()
	fmt.Printf("<<<>>>   executing '%s'   <<<>>>\n", pathname)

	_, err := py.RunFile(ctx, pathname, py.CompileOpts{}, nil)
	if err == nil {
		fmt.Printf("<<<>>>   execution complete: %v   <<<>>>\n", time.Since(startTime))
	}

	ctx.Close()
	<-ctx.Done()

	if err != nil {
		py.TracebackDump(err)
		return errors.Wrap(err, pathname)
	}
	return nil
}
