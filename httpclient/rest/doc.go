// Package rest provides a JSON-focused REST client built on httpclient.
//
// All requests carry Content-Type: application/json and
// Accept: application/json. The verb helpers share a single Exchange
// primitive, so headers and body handling behave identically across
// POST, PUT, and DELETE.
//
//	client, err := rest.NewBearer("my-token", rest.WithBaseURL("https://api.example.com"))
//
//	body, err := client.Get(ctx, "/users", map[string]string{"page": "2"})
//
//	user, err := rest.GetObject[User](ctx, client, "/users/123")
//
//	resp, err := client.Exchange(ctx, http.MethodPost, "/users", `{"name":"Alice"}`)
package rest
