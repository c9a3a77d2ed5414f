package main

import (
	"testing"

	"github.com/debashish967/cricbuzz-dashboard/internal/usecase"
)

func TestExitCodeFor(t *testing.T) {
	cases := map[usecase.FailureKind]int{
		usecase.FailureNone:      exitOK,
		usecase.FailureTransport: exitTransport,
		usecase.FailureConfig:    exitConfig,
		usecase.FailureProtocol:  exitUpstream,
		usecase.FailureMalformed: exitUpstream,
		usecase.FailureStorage:   exitStorage,
		usecase.FailureInternal:  exitInternal,
	}
	for kind, want := range cases {
		if got := exitCodeFor(kind); got != want {
			t.Fatalf("exitCodeFor(%q)=%d want %d", kind, got, want)
		}
	}
}
