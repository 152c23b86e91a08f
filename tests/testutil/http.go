// Package testutil provides common test utilities for the farm backend.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HandlerCase drives a single request through a gin handler. UserID, when
// set, authenticates the request the way the JWT middleware would, and
// FarmID is bound as the :farm_id route parameter the farm-scoped handlers
// read.
type HandlerCase struct {
	Name       string
	Method     string
	Path       string
	Body       any
	Headers    map[string]string
	UserID     uuid.UUID
	FarmID     uuid.UUID
	WantStatus int
	WantBody   map[string]any
	Setup      func(t *testing.T, tc *TestContext)
	Check      func(t *testing.T, tc *TestContext)
}

// RunHandlerCases runs each case as a subtest.
func RunHandlerCases(t *testing.T, handler gin.HandlerFunc, cases []HandlerCase) {
	t.Helper()

	for _, hc := range cases {
		t.Run(hc.Name, func(t *testing.T) {
			RunHandlerCase(t, handler, hc)
		})
	}
}

// RunHandlerCase builds the request, applies farm scoping and auth, invokes
// the handler and checks the expectations.
func RunHandlerCase(t *testing.T, handler gin.HandlerFunc, hc HandlerCase) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newHandlerRequest(t, hc)

	if hc.UserID != uuid.Nil {
		c.Set("jwt_user_id", hc.UserID.String())
	}
	if hc.FarmID != uuid.Nil {
		c.Params = append(c.Params, gin.Param{Key: "farm_id", Value: hc.FarmID.String()})
	}

	tc := &TestContext{Context: c, Recorder: w}
	if hc.Setup != nil {
		hc.Setup(t, tc)
	}

	handler(c)

	if hc.WantStatus != 0 {
		assert.Equal(t, hc.WantStatus, w.Code, "unexpected status code")
	}
	if hc.WantBody != nil {
		got := JSONResponse(t, tc)
		for key, want := range hc.WantBody {
			assert.Equal(t, want, got[key], "unexpected value for key %q", key)
		}
	}
	if hc.Check != nil {
		hc.Check(t, tc)
	}
}

func newHandlerRequest(t *testing.T, hc HandlerCase) *http.Request {
	t.Helper()

	method := hc.Method
	if method == "" {
		method = http.MethodGet
	}
	path := hc.Path
	if path == "" {
		path = "/"
	}

	var body io.Reader
	if hc.Body != nil {
		body = ToJSONReader(t, hc.Body)
	}

	req := httptest.NewRequest(method, path, body)
	if hc.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hc.Headers {
		req.Header.Set(k, v)
	}
	return req
}

// JSONResponse parses the response body as JSON.
func JSONResponse(t *testing.T, tc *TestContext) map[string]any {
	t.Helper()

	var result map[string]any
	err := json.Unmarshal(tc.ResponseBody(), &result)
	require.NoError(t, err, "failed to parse JSON response")
	return result
}

// JSONResponseAs parses the response body into the provided struct.
func JSONResponseAs[T any](t *testing.T, tc *TestContext) T {
	t.Helper()

	var result T
	err := json.Unmarshal(tc.ResponseBody(), &result)
	require.NoError(t, err, "failed to parse JSON response")
	return result
}

// AssertSuccessResponse asserts the response uses the success envelope.
func AssertSuccessResponse(t *testing.T, tc *TestContext) {
	t.Helper()

	resp := JSONResponse(t, tc)
	assert.True(t, resp["success"].(bool), "expected success envelope")
	assert.Nil(t, resp["error"], "expected no error in envelope")
}

// AssertErrorResponse asserts the response carries the given error code.
func AssertErrorResponse(t *testing.T, tc *TestContext, wantCode string) {
	t.Helper()

	resp := JSONResponse(t, tc)
	assert.False(t, resp["success"].(bool), "expected error envelope")

	errMap, ok := resp["error"].(map[string]any)
	require.True(t, ok, "expected error object in envelope")
	assert.Equal(t, wantCode, errMap["code"], "unexpected error code")
}

// ToJSONReader converts a value to a JSON io.Reader.
func ToJSONReader(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err, "failed to marshal to JSON")
	return bytes.NewReader(data)
}
