// Package astria provides types, interfaces, and helpers for working with the
// Astria v2 REST API.
//
// # Overview
//
// The astria package defines the domain types (Tune, Prompt, Account), the
// response envelopes every call returns, and the interfaces for the
// resource-oriented clients (TunesClient, PromptsClient, AccountsClient). A
// concrete implementation is provided by the astriaclient package, which wires
// configuration, transport and authentication. Most consumers import
// astriaclient to construct a client and then work with the interfaces
// exposed here.
//
// Getting a client
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
//	  cli, err := astriaclient.New(&astria.Config{AccessToken: "abc"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Second page of prompts of tune 1010
//	  page, err := cli.Prompts().List(ctx, 1010, &astria.ListOptions{Page: 2})
//	  if err != nil { log.Fatal(err) }
//	  _ = page.Data
//	}
//
// # Configuration
//
// Config values left empty are filled in from a ConfigProvider when the client
// is built (see Resolve). StaticProvider only knows the production base URL;
// the envconfig subpackage reads ASTRIA_* environment variables and an optional
// config file. The resolved Config never changes for the life of a client.
//
// # Pagination
//
// List methods return a single PaginatedResponse. All methods walk every page
// with Paginate, requesting 100 items at a time, and return the concatenated
// items together with the last raw response.
//
// # Errors
//
// Non-2xx responses are classified into AuthenticationFailedError (401),
// NotFoundError (404) and RequestError (anything else). Network failures are
// reported as TransportError. IsNotFound, IsUnauthorized and IsTransportError
// make branching on them easy.
package astria
