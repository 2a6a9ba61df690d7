package verifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/layer-3/gatecheck/core"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPVerifierRequiresSecret(t *testing.T) {
	v, err := NewHTTPVerifier("", "")

	require.ErrorIs(t, err, core.ErrMissingSecret)
	require.Nil(t, v)
}

func TestVerifySendsFormEncodedRequest(t *testing.T) {
	var gotSecret, gotResponse, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		gotSecret = r.PostFormValue("secret")
		gotResponse = r.PostFormValue("response")
		gotContentType = r.Header.Get("Content-Type")

		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	v, err := NewHTTPVerifier("server-secret", srv.URL)
	require.NoError(t, err)

	ok, err := v.Verify(context.Background(), "abc")
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, "server-secret", gotSecret)
	require.Equal(t, "abc", gotResponse)
	require.Equal(t, "application/x-www-form-urlencoded", gotContentType)
}

func TestVerifyRemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer srv.Close()

	v, err := NewHTTPVerifier("server-secret", srv.URL)
	require.NoError(t, err)

	ok, err := v.Verify(context.Background(), "xyz")
	require.NoError(t, err, "an explicit rejection is a result, not a transport failure")
	require.False(t, ok)
}

func TestVerifyNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	v, err := NewHTTPVerifier("server-secret", srv.URL)
	require.NoError(t, err)

	ok, err := v.Verify(context.Background(), "xyz")
	require.Error(t, err)
	require.False(t, ok)
}

func TestVerifyMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	v, err := NewHTTPVerifier("server-secret", srv.URL)
	require.NoError(t, err)

	ok, err := v.Verify(context.Background(), "xyz")
	require.Error(t, err)
	require.False(t, ok)
}

func TestVerifyUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	v, err := NewHTTPVerifier("server-secret", srv.URL)
	require.NoError(t, err)

	ok, err := v.Verify(context.Background(), "xyz")
	require.Error(t, err)
	require.False(t, ok)
}
