// Command tokengen issues a service token for the bot front end.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"vidgate/config"
	"vidgate/internal/domain/constants"
	"vidgate/internal/infra/auth"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "tokengen:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		subject string
		scopes  []string
		ttl     time.Duration
	)

	flagSet := pflag.NewFlagSet("tokengen", pflag.ContinueOnError)
	flagSet.StringVar(&subject, "subject", "bot-frontend", "name of the calling service")
	flagSet.StringSliceVar(&scopes, "scope", []string{constants.ScopeUsers}, "granted scope, repeatable ("+
		strings.Join([]string{constants.ScopeUsers, constants.ScopeCatalogWrite}, ", ")+")")
	flagSet.DurationVar(&ttl, "ttl", 0, "token lifetime, defaults to serviceToken.ttl")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if ttl > 0 && cfg.ServiceToken != nil {
		cfg.ServiceToken.TTL = ttl
	}

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokens.IssueServiceToken(subject, scopes)
	if err != nil {
		return errors.Wrap(err, "failed to issue token")
	}

	fmt.Println(token)

	return nil
}
