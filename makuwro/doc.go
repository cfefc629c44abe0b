// Package makuwro provides a client for the Makuwro content-publishing API.
//
// Makuwro hosts user-published creative content: art, blog posts, characters,
// stories and the comments attached to them. This package wraps the REST API
// behind plain method calls and translates every failure into a typed error.
//
// # Usage
//
// Create a client against one of the named endpoints:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := makuwro.NewClient(makuwro.Production, logger,
//		makuwro.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	token, err := client.CreateSession(ctx, "alice", "hunter2")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List a user's art.
//	items, err := client.GetAllContent(ctx, makuwro.ContentArt, "alice")
//
// # Content dispatch
//
// All content operations go through one generic pathway keyed by a
// ContentType tag. The tag selects the API directory and the hydration of
// response bodies into typed models (Art, BlogPost, Character, Story,
// Comment, Notification). Models are plain data; every network operation is
// a method on Client.
//
// # Error Handling
//
// Non-2xx responses are always translated into an *APIError wrapping one of
// the package's sentinel errors, so callers can classify failures with
// errors.Is:
//
//	_, err := client.CreateSession(ctx, "alice", "wrong")
//	if errors.Is(err, makuwro.ErrBadCredentials) {
//		// prompt again
//	}
//
// Local preconditions (missing arguments, an upload that is not a decodable
// image, a request deadline) fail with ErrMissingArgument,
// ErrUnallowedFileType and ErrTimeout before or instead of a network result.
// No call is ever retried; callers see one failure per attempt.
package makuwro
