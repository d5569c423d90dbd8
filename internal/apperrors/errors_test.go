package apperrors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		kind     Kind
	}{
		{name: "transport", err: Wrap(KindTransport, "fetch", io.ErrUnexpectedEOF), sentinel: ErrTransport, kind: KindTransport},
		{name: "http", err: HTTP("fetch", 403, "Forbidden"), sentinel: ErrHTTP, kind: KindHTTP},
		{name: "parse", err: Wrap(KindParse, "fetch", errors.New("bad json")), sentinel: ErrParse, kind: KindParse},
		{name: "filesystem", err: Wrap(KindFilesystem, "load", io.EOF), sentinel: ErrFilesystem, kind: KindFilesystem},
		{name: "configuration", err: Configuration("load", "bad"), sentinel: ErrConfiguration, kind: KindConfiguration},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tc.err)
			assert.True(t, errors.Is(wrapped, tc.sentinel))
			assert.Equal(t, tc.kind, KindOf(wrapped))

			for _, other := range []error{ErrTransport, ErrHTTP, ErrParse, ErrFilesystem, ErrConfiguration} {
				if other != tc.sentinel {
					assert.False(t, errors.Is(tc.err, other))
				}
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "fetch stargazers: request failed (status 403 Forbidden)",
		HTTP("fetch stargazers", 403, "Forbidden").Error())
	assert.Equal(t, "load: parse error: unexpected EOF",
		Wrap(KindParse, "load", io.ErrUnexpectedEOF).Error())
	assert.Equal(t, "validate: configuration error: token is required",
		Configuration("validate", "token is required").Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(KindTransport, "op", nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	err := Wrap(KindFilesystem, "save", io.ErrShortWrite)
	assert.True(t, errors.Is(err, io.ErrShortWrite))
}
