package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/learnsphere-dev/learnsphere/shared/csrf"
	"github.com/urfave/cli"
)

// get prints the decoded body even for error statuses; the body is the answer.
func (e *env) get(ctx *cli.Context) error {
	endpoint := ctx.Args().First()
	if endpoint == "" {
		return usageErr(ctx, "missing endpoint")
	}
	v, err := e.client.Get(context.Background(), endpoint, e.token)
	if err != nil {
		return exitErr(err)
	}
	return e.printJSON(v)
}

func (e *env) post(ctx *cli.Context) error {
	endpoint := ctx.Args().First()
	if endpoint == "" {
		return usageErr(ctx, "missing endpoint")
	}

	body := json.RawMessage("{}")
	if raw := ctx.Args().Get(1); raw != "" {
		if !json.Valid([]byte(raw)) {
			return usageErr(ctx, "body is not valid JSON")
		}
		body = json.RawMessage(raw)
	}

	v, err := e.client.Post(context.Background(), endpoint, body, e.token)
	if err != nil {
		return exitErr(err)
	}
	return e.printJSON(v)
}

func (e *env) cookie(ctx *cli.Context) error {
	var (
		value string
		err   error
	)
	if name := ctx.Args().First(); name != "" {
		value, err = e.cookies.Get(name)
	} else {
		value, err = csrf.FromStore(e.cookies)
	}
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Fprintln(e.out, value)
	return nil
}
