package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/eren/bootcamphub/internal/app/store"
	"github.com/eren/bootcamphub/internal/pkg/publisher"
)

// newTestStore writes the snapshot's collections as JSON files into a temp
// directory and returns a store reading from it.
func newTestStore(t *testing.T, snap store.Snapshot) *store.Store {
	t.Helper()
	dir := t.TempDir()

	writeJSONFile(t, dir, store.BootcampsFile, snap.Bootcamps)
	writeJSONFile(t, dir, store.StudentsFile, snap.Students)
	writeJSONFile(t, dir, store.InstructorsFile, snap.Instructors)
	writeJSONFile(t, dir, store.ProjectsFile, snap.Projects)
	writeJSONFile(t, dir, store.SponsorsFile, snap.Sponsors)

	return store.NewStore(dir)
}

func writeJSONFile(t *testing.T, dir, name string, v interface{}) {
	t.Helper()

	// A nil collection still needs to serialize as an empty JSON array
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshaling %s: %v", name, err)
	}
	if string(data) == "null" {
		data = []byte("[]")
	}

	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

// fakePublisher records change requests instead of talking to GitHub
type fakePublisher struct {
	calls []publisher.ChangeRequest
	url   string
	err   error
}

func (f *fakePublisher) CreatePullRequest(_ context.Context, change publisher.ChangeRequest) (*publisher.PullRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, change)
	return &publisher.PullRequest{URL: f.url, Number: 1}, nil
}
