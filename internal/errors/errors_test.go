package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "listing not found",
			},
			want: "listing not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeNetwork,
				Message: "could not reach server",
				Cause:   errors.New("dial tcp: connection refused"),
			},
			want: "could not reach server: dial tcp: connection refused",
		},
		{
			name: "rejection without body message",
			err:  Rejected(500, ""),
			want: "remote service rejected request (status 500)",
		},
		{
			name: "rejection with body message",
			err:  Rejected(400, "duplicate"),
			want: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Network(cause, "could not reach server")

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "email is required")
	if err.Code != ErrCodeValidation {
		t.Errorf("ValidationField().Code = %v, want %v", err.Code, ErrCodeValidation)
	}
	if err.Field != "email" {
		t.Errorf("ValidationField().Field = %v, want %v", err.Field, "email")
	}
	if GetField(err) != "email" {
		t.Errorf("GetField() = %v, want email", GetField(err))
	}
}

func TestWrap_NilError(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "wrapped error"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestWrapf(t *testing.T) {
	cause := errors.New("boom")
	err := Wrapf(cause, ErrCodeInternal, "decode %s", "listing")
	if err.Message != "decode listing" {
		t.Errorf("Wrapf().Message = %v, want %v", err.Message, "decode listing")
	}
	if !errors.Is(err, cause) {
		t.Errorf("Wrapf() should wrap cause")
	}
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"network", Network(errors.New("timeout"), "x"), IsNetwork, true},
		{"network wrapped", fmt.Errorf("save: %w", Network(errors.New("t"), "x")), IsNetwork, true},
		{"rejected", Rejected(403, "forbidden"), IsRejected, true},
		{"rejected is not network", Rejected(403, ""), IsNetwork, false},
		{"invalid credential", InvalidCredential("token is absent"), IsInvalidCredential, true},
		{"not found", NotFound("nope"), IsNotFound, true},
		{"validation", Validation("bad"), IsValidation, true},
		{"internal", Internal("bad"), IsInternal, true},
		{"canceled", Wrap(errors.New("ctx"), ErrCodeCanceled, "canceled"), IsCanceled, true},
		{"standard error", errors.New("plain"), IsRejected, false},
		{"nil error", nil, IsNetwork, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoteMessage(t *testing.T) {
	msg, ok := RemoteMessage(fmt.Errorf("create listing: %w", Rejected(400, "duplicate")))
	if !ok || msg != "duplicate" {
		t.Errorf("RemoteMessage() = %q, %v; want duplicate, true", msg, ok)
	}

	if _, ok := RemoteMessage(Rejected(500, "")); ok {
		t.Errorf("RemoteMessage() should report no message for empty body")
	}
	if _, ok := RemoteMessage(Network(errors.New("t"), "offline")); ok {
		t.Errorf("RemoteMessage() should ignore network failures")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(MalformedToken(errors.New("bad segment"))); got != ErrCodeMalformedToken {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeMalformedToken)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}
