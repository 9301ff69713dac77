package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus_Kinds(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		code    codes.Code
		message string
	}{
		{"validation", Validation("name", "name must be 1-50 characters"), codes.InvalidArgument, "name must be 1-50 characters"},
		{"forbidden", Forbidden("not a member"), codes.PermissionDenied, "not a member"},
		{"not found", NotFound("invitation not found"), codes.NotFound, "invitation not found"},
		{"conflict", Conflict("already invited"), codes.AlreadyExists, "already invited"},
		{"wrapped forbidden", fmt.Errorf("guard: %w", Forbidden("must be admin")), codes.PermissionDenied, "must be admin"},
		{"store failure", errors.New("connection refused"), codes.Internal, "internal error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st, ok := status.FromError(ToStatus(tc.err))
			if !ok {
				t.Fatalf("ToStatus(%v) is not a gRPC status", tc.err)
			}
			if st.Code() != tc.code {
				t.Errorf("code = %v, want %v", st.Code(), tc.code)
			}
			if st.Message() != tc.message {
				t.Errorf("message = %q, want %q", st.Message(), tc.message)
			}
		})
	}
}

func TestToStatus_Nil(t *testing.T) {
	if err := ToStatus(nil); err != nil {
		t.Errorf("ToStatus(nil) = %v, want nil", err)
	}
}

func TestToStatus_PassesThroughStatus(t *testing.T) {
	in := status.Error(codes.Unauthenticated, "missing or invalid authorization")
	if got := ToStatus(in); got != in {
		t.Errorf("ToStatus changed an existing status error: %v", got)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(errors.New("boom")) != KindUnknown {
		t.Error("plain error should be KindUnknown")
	}
	if !IsConflict(fmt.Errorf("wrap: %w", Conflict("already a member"))) {
		t.Error("wrapped conflict not detected")
	}
	if IsForbidden(NotFound("x")) {
		t.Error("not found reported as forbidden")
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Forbidden("must be admin"))
	if !errors.Is(err, &Error{Kind: KindForbidden}) {
		t.Error("errors.Is by kind should match")
	}
	if !errors.Is(err, Forbidden("must be admin")) {
		t.Error("errors.Is by kind and message should match")
	}
	if errors.Is(err, Forbidden("not a member")) {
		t.Error("errors.Is with a different message should not match")
	}
}

func TestError_ErrorString(t *testing.T) {
	if got := Validation("description", "too long").Error(); got != "validation: description: too long" {
		t.Errorf("Error() = %q", got)
	}
	if got := Forbidden("not a member").Error(); got != "forbidden: not a member" {
		t.Errorf("Error() = %q", got)
	}
}
