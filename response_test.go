package workday_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/connectorkit/workday"
)

func TestResponse_ToMap(t *testing.T) {
	testCases := []struct {
		name string
		resp workday.Response
		want map[string]any
	}{
		{
			name: "success with data",
			resp: workday.Response{
				Success: true,
				Data:    map[string]any{"worker_id": "123"},
				Message: "ok",
			},
			want: map[string]any{
				"success": true,
				"data":    map[string]any{"worker_id": "123"},
				"message": "ok",
			},
		},
		{
			name: "failure with error",
			resp: workday.Response{
				Success: false,
				Error:   "not found",
			},
			want: map[string]any{
				"success": false,
				"error":   "not found",
			},
		},
		{
			name: "zero value",
			resp: workday.Response{},
			want: map[string]any{"success": false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.resp.ToMap()); diff != "" {
				t.Errorf("unexpected map (-want +got):\n%s", diff)
			}
		})
	}
}
