package types

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTodoError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *TodoError
		want string
	}{
		{
			name: "kind only",
			err:  &TodoError{Kind: KindOutOfRange},
			want: "task index out of range",
		},
		{
			name: "op and message",
			err:  NewError(KindArgument, "remove", `invalid task id "x"`, nil),
			want: `remove: invalid task id "x"`,
		},
		{
			name: "path and cause",
			err:  NewPathError(KindIO, "open storage file", "/home/u/.todo", fs.ErrPermission),
			want: "open storage file: storage i/o error (/home/u/.todo): permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestTodoError_Is(t *testing.T) {
	err := NewPathError(KindIO, "save", "/x", fs.ErrClosed)

	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, fs.ErrClosed), "cause should be reachable through Unwrap")
	assert.False(t, errors.Is(err, ErrSyntax))

	wrapped := fmt.Errorf("running list: %w", NewError(KindSyntax, "decode", "", nil))
	assert.True(t, errors.Is(wrapped, ErrSyntax))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindEnvironment, KindOf(NewError(KindEnvironment, "", "$HOME is not set", nil)))
	assert.Equal(t, KindArgument, KindOf(fmt.Errorf("wrap: %w", ErrArgument)))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}
