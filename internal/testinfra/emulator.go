package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	EmulatorImage   = "gcr.io/google.com/cloudsdktool/google-cloud-cli:emulators"
	EmulatorProject = "demo-lookupload"

	emulatorPort = "8080/tcp"
)

// FirestoreEmulator is a running Firestore emulator container.
// Host is the host:port to put in FIRESTORE_EMULATOR_HOST.
type FirestoreEmulator struct {
	testcontainers.Container
	Host string
}

func StartFirestoreEmulator(ctx context.Context) (*FirestoreEmulator, error) {
	req := testcontainers.ContainerRequest{
		Image:        EmulatorImage,
		ExposedPorts: []string{emulatorPort},
		Cmd: []string{
			"gcloud", "emulators", "firestore", "start",
			"--host-port=0.0.0.0:8080",
			"--project=" + EmulatorProject,
		},
		WaitingFor: wait.ForLog("Dev App Server is now running").
			WithStartupTimeout(2 * time.Minute),
	}

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start firestore emulator: %w", err)
	}

	host, err := ctr.Host(ctx)
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get emulator host: %w", err)
	}

	port, err := ctr.MappedPort(ctx, emulatorPort)
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get emulator port: %w", err)
	}

	return &FirestoreEmulator{Container: ctr, Host: fmt.Sprintf("%s:%s", host, port.Port())}, nil
}
