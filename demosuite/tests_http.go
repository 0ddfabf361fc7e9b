package demosuite

import (
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanBelleKoen/softassert"
	"github.com/VanBelleKoen/softassert/framework"
)

const requestTimeout = time.Second * 5

func newServer(t *softassert.T, handler http.Handler) *httptest.Server {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func get(t *softassert.T, url string) (*http.Response, []byte) {
	client := &http.Client{Timeout: requestTimeout}
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func registerResponseTests(s *framework.Suite, opts []softassert.Option) {
	softassert.Test(s, "response status, headers, and body are all checked", func(t *softassert.T) softassert.Completion {
		headers := make(http.Header)
		headers.Set("Content-Type", "application/json")
		headers.Set("Cache-Control", "no-store")
		handler := httphelpers.HandlerWithResponse(200, headers, []byte(`{"status":"ok"}`))
		server := newServer(t, handler)

		resp, body := get(t, server.URL)

		// All of these run even if an earlier one fails; failures are
		// reported together at the end of the test.
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
		assert.JSONEq(t, `{"status":"ok"}`, string(body))
		return nil
	}, opts...)

	softassert.Test(s, "every request in a sequence is checked", func(t *softassert.T) softassert.Completion {
		handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(204))
		server := newServer(t, handler)

		for i := 0; i < 3; i++ {
			resp, _ := get(t, server.URL)
			assert.Equal(t, 204, resp.StatusCode)
		}

		assert.Equal(t, 3, len(requestsCh))
		for i := 0; i < 3; i++ {
			info := <-requestsCh
			assert.Equal(t, "GET", info.Request.Method)
		}
		return nil
	}, opts...)
}

func registerChainTests(s *framework.Suite, opts []softassert.Option) {
	softassert.Test(s, "deferred steps run in order before the report", func(t *softassert.T) softassert.Completion {
		handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
		server := newServer(t, handler)

		t.Defer("first request", func() error {
			resp, _ := get(t, server.URL)
			assert.Equal(t, 200, resp.StatusCode)
			return nil
		})
		t.Defer("second request", func() error {
			resp, _ := get(t, server.URL+"/second")
			assert.Equal(t, 200, resp.StatusCode)
			return nil
		})
		t.Defer("check recorded paths", func() error {
			assert.Equal(t, 2, len(requestsCh))
			first := <-requestsCh
			second := <-requestsCh
			assert.Equal(t, "/", first.Request.URL.Path)
			assert.Equal(t, "/second", second.Request.URL.Path)
			return nil
		})
		return nil
	}, opts...)
}

func registerAsyncTests(s *framework.Suite, opts []softassert.Option) {
	softassert.Test(s, "asynchronous body completes before the report", func(t *softassert.T) softassert.Completion {
		handler := httphelpers.HandlerWithResponse(200, nil, []byte("hello"))
		server := newServer(t, handler)

		done := make(chan error, 1)
		go func() {
			client := &http.Client{Timeout: requestTimeout}
			resp, err := client.Get(server.URL)
			if err != nil {
				done <- err
				return
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				done <- err
				return
			}
			assert.Equal(t, 200, resp.StatusCode)
			assert.Equal(t, "hello", string(body))
			done <- nil
		}()
		return softassert.Await(done)
	}, opts...)
}
