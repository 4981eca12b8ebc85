package lookupload

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// LoadConfig contains all parameters needed for an upload run.
type LoadConfig struct {
	// CredentialsPath is the service-account key file. Not required for
	// dry runs or when EmulatorHost is set.
	CredentialsPath string

	// ProjectID overrides the project named in the key file.
	ProjectID string

	// EmulatorHost is the Firestore emulator address (host:port), if any
	EmulatorHost string

	// Collection receives one document per category
	Collection string

	// Categories restricts the upload to the named categories. Empty means all.
	Categories []string

	// Concurrency is the number of writes in flight. 1 keeps table order.
	Concurrency int

	// DryRun writes to memory instead of the database
	DryRun bool

	// Timeout is the global timeout for the entire run
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the LoadConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.Collection == "" {
		errs = append(errs, fmt.Errorf("Collection is required: %w", ErrInvalidConfig))
	} else if strings.Contains(c.Collection, "/") {
		errs = append(errs, fmt.Errorf("collection %q must be a top-level collection id: %w", c.Collection, ErrInvalidConfig))
	}

	if c.CredentialsPath == "" && !c.DryRun && c.EmulatorHost == "" {
		errs = append(errs, fmt.Errorf("CredentialsPath is required: %w", ErrInvalidConfig))
	}

	if c.Concurrency < 1 || c.Concurrency > MaxConcurrency {
		errs = append(errs, fmt.Errorf("concurrency must be between 1 and %d, got %d: %w", MaxConcurrency, c.Concurrency, ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// LoadResult describes what an upload run committed.
type LoadResult struct {
	// Collection the documents were written to
	Collection string

	// Written lists the categories whose documents were replaced, in
	// completion order. On failure it holds what was committed before the error.
	Written []string

	// DryRun is true when nothing reached the database
	DryRun bool

	Duration time.Duration
}
