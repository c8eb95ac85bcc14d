// Package twitchapi provides a typed client for the Twitch App add-on catalog
// API (https://addons-ecs.forgesvc.net/api/v2).
//
// The client fetches add-ons, categories and category sections by numeric id
// and decodes the JSON responses into the record types defined in this
// package. It performs no retries, caching or logging: every call is one
// GET request and its outcome is returned to the caller.
//
// # Usage
//
//	client, err := twitchapi.NewClient()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	addon, err := client.Addon(ctx, 238222)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(addon.Name)
//
// # Errors
//
// Failures fall into four groups, all checkable with errors.Is / errors.As:
//
//   - ErrInvalidConfig: NewClient was given a bad option
//   - ErrTransport: the request could not be sent or the body not read
//   - ErrDecode: the body does not match the record schema
//   - *APIError: the service answered with a non-2xx status
//
// A *MissingFieldError is also an ErrDecode and names the absent wire key.
package twitchapi
