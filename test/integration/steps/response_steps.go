package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/cucumber/godog"
)

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should match json:$`, theResponseShouldMatchJSON)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)",
			expected, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}

	contentType := tc.response.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return fmt.Errorf("expected JSON content type, got %q", contentType)
	}

	var decoded any
	if err := json.Unmarshal(tc.responseBody, &decoded); err != nil {
		return fmt.Errorf("response body is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldMatchJSON(ctx context.Context, expected *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}

	var want, got any
	if err := json.Unmarshal([]byte(expected.Content), &want); err != nil {
		return fmt.Errorf("expected document is not valid JSON: %w", err)
	}
	if err := json.Unmarshal(tc.responseBody, &got); err != nil {
		return fmt.Errorf("response body is not valid JSON: %w", err)
	}

	if !reflect.DeepEqual(want, got) {
		return fmt.Errorf("response mismatch\nexpected: %s\nactual:   %s",
			expected.Content, string(tc.responseBody))
	}
	return nil
}

// theResponseFieldShouldBe resolves a dotted path ("share.0.tipo_imovel") in
// the response body and compares the value's string form.
func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}

	var decoded any
	if err := json.Unmarshal(tc.responseBody, &decoded); err != nil {
		return fmt.Errorf("response body is not valid JSON: %w", err)
	}

	current := decoded
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return fmt.Errorf("field %q not found in path %q", part, path)
			}
			current = value
		case []any:
			var index int
			if _, err := fmt.Sscanf(part, "%d", &index); err != nil {
				return fmt.Errorf("expected numeric index at %q in path %q", part, path)
			}
			if index < 0 || index >= len(node) {
				return fmt.Errorf("index %d out of range at path %q", index, path)
			}
			current = node[index]
		default:
			return fmt.Errorf("cannot descend into %q at path %q", part, path)
		}
	}

	actual := fmt.Sprintf("%v", current)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, actual)
	}
	return nil
}
