//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/data"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/catalog"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/mix"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/search"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// ingredientToken accepts either a JSON number (id) or a string (id or name).
type ingredientToken string

func (t *ingredientToken) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = ingredientToken(s)
		return nil
	}
	var n uint16
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("ingredient must be a name or an id: %s", b)
	}
	*t = ingredientToken(fmt.Sprint(n))
	return nil
}

type bestRequest struct {
	Depth     int `json:"depth"`
	BeamWidth int `json:"beamWidth"`
}

type mixRequest struct {
	Ingredients []ingredientToken `json:"ingredients"`
	Best        *bestRequest      `json:"best"`
}

type mixResponse struct {
	Mix    MixReport  `json:"mix"`
	Best   *MixReport `json:"best,omitempty"`
	TimeMs int64      `json:"timeMs,omitempty"`
}

var src *catalog.Static

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req mixRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}
	if len(req.Ingredients) == 0 && req.Best == nil {
		return errResp(400, "missing ingredients")
	}

	m := mix.New(src)
	for _, token := range req.Ingredients {
		id, err := src.Table.Lookup(string(token))
		if err != nil {
			return errResp(400, err.Error())
		}
		if err := m.AddIngredient(id); err != nil {
			return errResp(400, err.Error())
		}
	}
	mul, err := m.Multiplier()
	if err != nil {
		return errResp(400, err.Error())
	}
	resp := mixResponse{Mix: newMixReport(src.Table, src.Catalog, m.Order(), m.Effects(), mul)}

	if req.Best != nil {
		tuning := search.DefaultConfig()
		if req.Best.Depth > 0 {
			tuning.Depth = min(req.Best.Depth, mix.MaxIngredients)
		}
		if req.Best.BeamWidth > 0 {
			tuning.BeamWidth = min(req.Best.BeamWidth, 64)
		}
		res, elapsed, err := search.New(src, tuning, nil).Best(m.Order())
		if err != nil {
			return errResp(400, err.Error())
		}
		best := newMixReport(src.Table, src.Catalog, res.Order, res.Effects, res.Multiplier)
		resp.Best = &best
		resp.TimeMs = elapsed.Milliseconds()
	}

	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	var err error
	src, err = data.Source()
	if err != nil {
		slog.Error("embedded documents are invalid", "error", err)
		os.Exit(1)
	}
	lambda.Start(handler)
}
