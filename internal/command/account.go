package command

import (
	"context"
	"fmt"
	"time"

	"github.com/learnsphere-dev/learnsphere/shared/jwt"
	"github.com/urfave/cli"
)

var (
	loginFlags = []cli.Flag{
		cli.StringFlag{
			Name:  "username, u",
			Usage: "account username",
		},
		cli.StringFlag{
			Name:   "password, p",
			Usage:  "account password",
			EnvVar: "LEARNSPHERE_PASSWORD",
		},
	}

	whoamiFlags = []cli.Flag{
		cli.BoolFlag{
			Name:  "offline",
			Usage: "only decode the token, do not call /profile/",
		},
	}
)

// login prints the token pair; keeping it is up to the caller.
func (e *env) login(ctx *cli.Context) error {
	pair, err := e.client.Login(context.Background(), ctx.String("username"), ctx.String("password"))
	if err != nil {
		return exitErr(err)
	}
	return e.printJSON(pair)
}

func (e *env) whoami(ctx *cli.Context) error {
	if e.token == "" {
		return cli.NewExitError("no token: pass --token or set LEARNSPHERE_TOKEN", 1)
	}
	claims, err := jwt.Inspect(e.token)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	fmt.Fprintf(e.out, "user id:    %d\n", claims.UserID)
	fmt.Fprintf(e.out, "token type: %s\n", claims.TokenType)
	if left, ok := claims.ExpiresIn(time.Now()); ok {
		if left <= 0 {
			fmt.Fprintf(e.out, "expires:    expired %s ago\n", (-left).Round(time.Second))
		} else {
			fmt.Fprintf(e.out, "expires:    in %s\n", left.Round(time.Second))
		}
	}
	if ctx.Bool("offline") {
		return nil
	}

	user, err := e.client.Profile(context.Background(), e.token)
	if err != nil {
		return exitErr(err)
	}
	fmt.Fprintf(e.out, "username:   %s\n", user.Username)
	fmt.Fprintf(e.out, "email:      %s\n", user.Email)
	fmt.Fprintf(e.out, "role:       %s\n", user.Role)
	fmt.Fprintf(e.out, "points:     %d\n", user.Points)
	return nil
}
