// Package astriaclient provides the primary entry point for constructing an
// Astria API client that implements the astria.Client interface.
//
// It resolves configuration, builds the HTTP transport and wires the
// resource clients defined in the astria package. Most applications import
// astriaclient to build a client, then use the returned astria.Client to reach
// Tunes(), Prompts() and Accounts().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/astria-api/astria-go/pkg/astria"
//	  "github.com/astria-api/astria-go/pkg/astriaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Bearer token against the production API.
//	  cli, err := astriaclient.New(&astria.Config{AccessToken: "sd_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  // Every prompt of tune 1010, newest first.
//	  prompts, err := cli.Prompts().All(ctx, 1010, &astria.ListOptions{Sort: "created_at:desc"})
//	  if err != nil { log.Fatal(err) }
//	  _ = prompts
//	}
//
// # Defaults
//
// Fields left empty in astria.Config are taken from a ConfigProvider. New uses
// astria.DefaultProvider, which only supplies the production base URL. To read
// ASTRIA_* environment variables and an optional config file, pass an
// envconfig.Provider to NewWithProvider:
//
//	provider, err := envconfig.New("")
//	if err != nil { log.Fatal(err) }
//	cli, err := astriaclient.NewWithProvider(nil, provider)
//
// A base URL without a scheme is treated as https.
//
// # Helpers
//
// NewWithToken and NewWithPassword cover the common single-credential setups.
package astriaclient
