package workday_test

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/connectorkit/workday"
	"github.com/connectorkit/workday/configsvc"
)

func ExampleBuildWithConfig() {
	c, err := workday.BuildWithConfig(workday.Config{
		BaseURL: "https://acme.workday.com/",
		Token:   "s3cr3t",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(c.BaseURL())
	// Output: https://acme.workday.com
}

func ExampleBuildFromServices() {
	svc := configsvc.Static{
		workday.ConfigPath: {
			"base_url": "https://acme.workday.com",
			"auth": map[string]any{
				"authType": "TOKEN",
				"token":    "s3cr3t",
			},
		},
	}

	c, err := workday.BuildFromServices(context.Background(), slog.Default(), svc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(c.BaseURL())
	// Output: https://acme.workday.com
}

func ExampleConfig_ToMap() {
	cfg := workday.Config{
		BaseURL: "https://acme.workday.com",
		Token:   "s3cr3t",
	}

	m := cfg.ToMap()
	fmt.Println(m["base_url"], m["token"])
	// Output: https://acme.workday.com [REDACTED]
}
