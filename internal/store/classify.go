package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/fishub/lookupload/pkg/lookupload"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// classify maps a Firestore error onto the lookupload sentinels.
// The result always wraps ErrWriteFailed and the original error.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w: %w", lookupload.ErrWriteFailed, lookupload.ErrConnectionFailed, err)
	}

	switch status.Code(err) {
	case codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%w: %w: %w", lookupload.ErrWriteFailed, lookupload.ErrPermissionDenied, err)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %w: %w", lookupload.ErrWriteFailed, lookupload.ErrConnectionFailed, err)
	default:
		return fmt.Errorf("%w: %w", lookupload.ErrWriteFailed, err)
	}
}
