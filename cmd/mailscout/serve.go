package main

import (
	mshttp "github.com/fwojciec/mailscout/http"
)

// Run executes the serve command. It blocks until the context is canceled
// and the server has drained in-flight requests.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := mshttp.NewServer(c.serverConfig(), deps.Crawls, deps.Logger)

	if deps.Listener != nil {
		return srv.Serve(deps.Ctx, deps.Listener)
	}
	return srv.ListenAndServe(deps.Ctx)
}
