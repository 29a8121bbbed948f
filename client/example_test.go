package client_test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/connectorkit/workday/client"
)

func ExampleBuild() {
	c, err := client.Build(
		client.WithBearerToken("s3cr3t"),
		client.WithTimeout(10*time.Second),
		client.WithUserAgent("workday-connector/1.0"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = c
	fmt.Println("client built")
	// Output: client built
}

func ExampleURL() {
	u := client.URL("https", "acme.workday.com", "/api/v1",
		client.WithQueryStrings(map[string]string{"limit": "10"}),
	)

	fmt.Println(u.String())
	// Output: https://acme.workday.com/api/v1?limit=10
}

func ExampleRequest() {
	type worker struct {
		Name string `json:"name"`
	}

	u := client.URL("https", "acme.workday.com", "/api/v1/workers")

	req, err := client.Request(context.Background(), u, http.MethodPost,
		client.WithPayload(worker{Name: "alice"}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(req.Method, req.URL.Path)
	// Output: POST /api/v1/workers
}
