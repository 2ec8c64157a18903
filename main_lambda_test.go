//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/data"
)

func TestHandler(t *testing.T) {
	var err error
	src, err = data.Source()
	if err != nil {
		t.Fatalf("data.Source: %v", err)
	}

	tests := []struct {
		name     string
		body     string
		base64   bool
		wantCode int
		wantBody string
	}{
		{"names and ids", `{"ingredients": ["banana", 4]}`, false, 200, `"multiplier":0.66`},
		{"base64", `{"ingredients": ["banana"]}`, true, 200, `"name":"gingeritis"`},
		{"best", `{"ingredients": ["banana"], "best": {"depth": 2}}`, false, 200, `"best":`},
		{"missing", `{}`, false, 400, "missing ingredients"},
		{"bad json", `{`, false, 400, "invalid JSON"},
		{"unknown", `{"ingredients": ["bananna"]}`, false, 400, "did you mean banana?"},
		{"duplicate", `{"ingredients": ["cuke", "cuke"]}`, false, 400, "duplicate ingredient"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.body
			if tt.base64 {
				body = base64.StdEncoding.EncodeToString([]byte(body))
			}
			resp, err := handler(context.Background(), events.LambdaFunctionURLRequest{Body: body, IsBase64Encoded: tt.base64})
			if err != nil {
				t.Fatalf("handler: %v", err)
			}
			if resp.StatusCode != tt.wantCode {
				t.Errorf("status = %d, want %d (%s)", resp.StatusCode, tt.wantCode, resp.Body)
			}
			if !strings.Contains(resp.Body, tt.wantBody) {
				t.Errorf("body %s does not contain %s", resp.Body, tt.wantBody)
			}
			if !json.Valid([]byte(resp.Body)) {
				t.Errorf("body is not JSON: %s", resp.Body)
			}
		})
	}
}
