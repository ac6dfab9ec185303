// Package command implements the learnsphere command line client.
package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/learnsphere-dev/learnsphere/shared/apiclient"
	"github.com/learnsphere-dev/learnsphere/shared/render"
	internal_errors "github.com/learnsphere-dev/learnsphere/shared/errors"
	"github.com/learnsphere-dev/learnsphere/shared/config"
	"github.com/learnsphere-dev/learnsphere/shared/cookie"
	"github.com/learnsphere-dev/learnsphere/shared/logger"
	"github.com/urfave/cli"
)

// Exit codes beyond the generic 1.
const (
	ExitUnavailable = 3
	ExitInvalidJSON = 4
	ExitRejected    = 5
)

type BuildArgs struct {
	Version string
	Commit  string
}

// env is what Before prepares for every command.
type env struct {
	out     io.Writer
	errOut  io.Writer
	cfg     *config.Config
	client  *apiclient.Client
	token   string
	cookies cookie.Store
	text    *render.TextProcessor
}

var globalFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "config, c",
		Usage:  "path to config.yaml",
		EnvVar: "LEARNSPHERE_CONFIG",
	},
	cli.StringFlag{
		Name:   "base-url",
		Usage:  "API origin, overrides api.base_url (default: " + config.DefaultBaseURL + ")",
		EnvVar: "LEARNSPHERE_BASE_URL",
	},
	cli.StringFlag{
		Name:   "token, t",
		Usage:  "access token sent as a bearer credential",
		EnvVar: "LEARNSPHERE_TOKEN",
	},
	cli.StringFlag{
		Name:   "cookies",
		Usage:  "cookie string in the `a=1; b=2` form",
		EnvVar: "LEARNSPHERE_COOKIES",
	},
	cli.StringFlag{
		Name:  "log-level",
		Usage: "debug, info, warn or error (overrides log.level)",
	},
	cli.BoolFlag{
		Name:  "log-json",
		Usage: "log as JSON (overrides log.json)",
	},
}

// Execute runs the CLI with args (including the program name) and writes
// command output to out. Errors are returned, never turned into os.Exit.
func Execute(args []string, out, errOut io.Writer, bArgs BuildArgs) error {
	e := &env{out: out, errOut: errOut, text: render.New()}

	app := cli.NewApp()
	app.Name = "learnsphere"
	app.HelpName = "learnsphere"
	app.Usage = "talk to the LearnSphere API from a terminal"
	app.UsageText = "learnsphere [global options] <command> [arguments...]"
	app.Version = bArgs.Version
	if bArgs.Commit != "" {
		app.Version += "-" + bArgs.Commit
	}
	app.Writer = out
	app.ErrWriter = errOut
	app.Flags = globalFlags
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Commands = []cli.Command{
		{
			Name:      "get",
			Usage:     "GET an endpoint and print the JSON body, whatever the status",
			ArgsUsage: "<endpoint>",
			Action:    e.run(e.get),
		},
		{
			Name:      "post",
			Usage:     "POST a JSON body to an endpoint and print the JSON answer",
			ArgsUsage: "<endpoint> [json]",
			Action:    e.run(e.post),
		},
		{
			Name:      "cookie",
			Usage:     "print a cookie from --cookies (csrftoken when no name is given)",
			ArgsUsage: "[name]",
			Action:    e.run(e.cookie),
		},
		{
			Name:   "login",
			Usage:  "exchange credentials for an access/refresh token pair",
			Flags:  loginFlags,
			Action: e.run(e.login),
		},
		{
			Name:  "courses",
			Usage: "browse and enroll in courses",
			Subcommands: []cli.Command{
				{
					Name:   "list",
					Usage:  "list published courses",
					Flags:  listFlags,
					Action: e.run(e.coursesList),
				},
				{
					Name:      "show",
					Usage:     "show a course with its modules",
					ArgsUsage: "<slug>",
					Flags:     showFlags,
					Action:    e.run(e.coursesShow),
				},
				{
					Name:      "enroll",
					Usage:     "enroll the token's user in a course",
					ArgsUsage: "<slug>",
					Action:    e.run(e.coursesEnroll),
				},
			},
		},
		{
			Name:   "whoami",
			Usage:  "decode the token and fetch the matching profile",
			Flags:  whoamiFlags,
			Action: e.run(e.whoami),
		},
		{
			Name:   "dashboard",
			Usage:  "print the student dashboard",
			Action: e.run(e.dashboard),
		},
	}

	return app.Run(args)
}

// run prepares the env from the global flags before calling action.
func (e *env) run(action func(*cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		if err := e.setup(ctx); err != nil {
			return err
		}
		return action(ctx)
	}
}

func (e *env) setup(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.GlobalString("config"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if v := ctx.GlobalString("base-url"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := ctx.GlobalString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if ctx.GlobalBool("log-json") {
		cfg.Log.JSON = true
	}
	if err := cfg.Validate(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	logger.InitializeWriter(e.errOut, cfg.Log.Level, cfg.Log.JSON)

	client, err := apiclient.New(apiclient.Config{BaseURL: cfg.API.BaseURL})
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	e.cfg = cfg
	e.client = client
	e.token = ctx.GlobalString("token")
	e.cookies = cookie.NewReader(cookie.String(ctx.GlobalString("cookies")))
	return nil
}

// exitErr maps client errors to exit codes.
func exitErr(err error) error {
	if err == nil {
		return nil
	}
	code := 1
	var statusErr *internal_errors.ErrorWithStatusCode
	switch {
	case errors.Is(err, apiclient.ErrBackendUnavailable):
		code = ExitUnavailable
	case errors.Is(err, apiclient.ErrInvalidJSON):
		code = ExitInvalidJSON
	case errors.As(err, &statusErr):
		code = ExitRejected
	}
	return cli.NewExitError(err.Error(), code)
}

func usageErr(ctx *cli.Context, msg string) error {
	return cli.NewExitError(fmt.Sprintf("%s: %s (usage: %s %s)", ctx.Command.Name, msg, ctx.Command.HelpName, ctx.Command.ArgsUsage), 2)
}

func (e *env) printJSON(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// ExitCode extracts the process exit code Execute's error asks for.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}
