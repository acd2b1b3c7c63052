package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/eren/bootcamphub/internal/app/models"
	"github.com/eren/bootcamphub/internal/app/models/dto"
	"github.com/eren/bootcamphub/internal/app/store"
	"github.com/eren/bootcamphub/internal/pkg/apperrors"
	"github.com/eren/bootcamphub/internal/pkg/publisher"
)

func baseSnapshot() store.Snapshot {
	return store.Snapshot{
		Bootcamps: []models.Bootcamp{{
			ID:         "b1",
			Location:   "Istanbul",
			StudentIDs: []string{"s1"},
		}},
		Students: []models.Student{{ID: "s1", Name: "Alice"}},
		Projects: []models.Project{{ID: "p1", Name: "Navigator"}},
	}
}

func newTestSubmissionService(t *testing.T, snap store.Snapshot) (SubmissionService, *fakePublisher, *store.Store) {
	t.Helper()
	st := newTestStore(t, snap)
	pub := &fakePublisher{url: "https://github.com/acme/site/pull/42"}
	return NewSubmissionService(st, pub, zerolog.Nop()), pub, st
}

// decodeFile unmarshals one staged change file's content
func decodeFile[T any](t *testing.T, files []publisher.ChangeFile, path string) []T {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			var records []T
			if err := json.Unmarshal([]byte(f.Content), &records); err != nil {
				t.Fatalf("parsing staged %s: %v", path, err)
			}
			return records
		}
	}
	t.Fatalf("change set has no file %s (files: %v)", path, files)
	return nil
}

func TestSubmitProfileAppendsStudentAndUpdatesBootcamp(t *testing.T) {
	t.Parallel()
	svc, pub, _ := newTestSubmissionService(t, baseSnapshot())

	result, err := svc.SubmitProfile(context.Background(), dto.ProfileSubmissionRequest{
		Name:       "Bob",
		Location:   "Ankara",
		Role:       "Backend Developer",
		BootcampID: "b1",
	})
	if err != nil {
		t.Fatalf("SubmitProfile: unexpected error: %v", err)
	}
	if result.PullRequestURL != "https://github.com/acme/site/pull/42" {
		t.Errorf("pull request URL: got %q", result.PullRequestURL)
	}

	if len(pub.calls) != 1 {
		t.Fatalf("publisher calls: got %d, want 1", len(pub.calls))
	}
	change := pub.calls[0]

	// Existing students keep their order; the new one is appended at the end
	students := decodeFile[models.Student](t, change.Files, "public/data/students.json")
	if len(students) != 2 {
		t.Fatalf("staged students: got %d, want 2", len(students))
	}
	if students[0].Name != "Alice" || students[1].Name != "Bob" {
		t.Errorf("staged student order: got [%s %s], want [Alice Bob]", students[0].Name, students[1].Name)
	}
	if students[1].ID != result.EntityID {
		t.Errorf("appended student id: got %s, want %s", students[1].ID, result.EntityID)
	}

	// The bootcamp's id array is the original plus exactly the new id
	bootcamps := decodeFile[models.Bootcamp](t, change.Files, "public/data/bootcamps.json")
	wantIDs := []string{"s1", result.EntityID}
	if diff := cmp.Diff(wantIDs, bootcamps[0].StudentIDs); diff != "" {
		t.Errorf("studentIds mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(change.Title, "Bob") {
		t.Errorf("title: got %q, want it to mention the student name", change.Title)
	}
	if !strings.Contains(change.Body, result.EntityID) {
		t.Errorf("body should carry the new id for traceability, got:\n%s", change.Body)
	}
}

func TestSubmitProfileDoesNotTouchStoredData(t *testing.T) {
	t.Parallel()
	svc, _, st := newTestSubmissionService(t, baseSnapshot())

	if _, err := svc.SubmitProfile(context.Background(), dto.ProfileSubmissionRequest{
		Name:       "Bob",
		Location:   "Ankara",
		Role:       "Backend Developer",
		BootcampID: "b1",
	}); err != nil {
		t.Fatalf("SubmitProfile: unexpected error: %v", err)
	}

	// The submission only stages copies; the backing files stay unchanged
	students, err := st.LoadStudents()
	if err != nil {
		t.Fatalf("reloading students: %v", err)
	}
	if len(students) != 1 || students[0].Name != "Alice" {
		t.Errorf("stored students after submit: got %v, want just Alice", students)
	}

	bootcamps, err := st.LoadBootcamps()
	if err != nil {
		t.Fatalf("reloading bootcamps: %v", err)
	}
	if diff := cmp.Diff([]string{"s1"}, bootcamps[0].StudentIDs); diff != "" {
		t.Errorf("stored studentIds after submit (-want +got):\n%s", diff)
	}
}

func TestSubmitProfileUnknownBootcampAborts(t *testing.T) {
	t.Parallel()
	svc, pub, _ := newTestSubmissionService(t, baseSnapshot())

	_, err := svc.SubmitProfile(context.Background(), dto.ProfileSubmissionRequest{
		Name:       "Bob",
		Location:   "Ankara",
		Role:       "Backend Developer",
		BootcampID: "nope",
	})
	if !errors.Is(err, apperrors.ErrBootcampNotFound) {
		t.Fatalf("SubmitProfile(unknown bootcamp): got err %v, want ErrBootcampNotFound", err)
	}

	// Nothing may be published when the parent bootcamp is missing
	if len(pub.calls) != 0 {
		t.Errorf("publisher calls: got %d, want 0", len(pub.calls))
	}
}

func TestSubmitProfileImageRoundTrip(t *testing.T) {
	t.Parallel()
	svc, pub, _ := newTestSubmissionService(t, baseSnapshot())

	result, err := svc.SubmitProfile(context.Background(), dto.ProfileSubmissionRequest{
		Name:       "Bob",
		Location:   "Ankara",
		Role:       "Backend Developer",
		BootcampID: "b1",
		Image:      "data:image/png;base64,QQ==",
	})
	if err != nil {
		t.Fatalf("SubmitProfile: unexpected error: %v", err)
	}

	change := pub.calls[0]
	if len(change.Files) != 3 {
		t.Fatalf("change files: got %d, want 3 (two collections plus image)", len(change.Files))
	}

	image := change.Files[2]
	if image.Content != "QQ==" {
		t.Errorf("image content: got %q, want %q", image.Content, "QQ==")
	}
	wantPath := "public/uploads/" + result.EntityID + ".png"
	if image.Path != wantPath {
		t.Errorf("image path: got %q, want %q", image.Path, wantPath)
	}

	students := decodeFile[models.Student](t, change.Files, "public/data/students.json")
	if got := students[1].Image; got != "/uploads/"+result.EntityID+".png" {
		t.Errorf("student image reference: got %q", got)
	}
}

func TestSubmitProfileMalformedImageTolerated(t *testing.T) {
	t.Parallel()
	svc, pub, _ := newTestSubmissionService(t, baseSnapshot())

	_, err := svc.SubmitProfile(context.Background(), dto.ProfileSubmissionRequest{
		Name:       "Bob",
		Location:   "Ankara",
		Role:       "Backend Developer",
		BootcampID: "b1",
		Image:      "not-a-data-uri",
	})
	if err != nil {
		t.Fatalf("SubmitProfile with malformed image: unexpected error: %v", err)
	}

	change := pub.calls[0]
	if len(change.Files) != 2 {
		t.Fatalf("change files: got %d, want 2 (no image staged)", len(change.Files))
	}
	students := decodeFile[models.Student](t, change.Files, "public/data/students.json")
	if students[1].Image != "" {
		t.Errorf("student image reference: got %q, want empty", students[1].Image)
	}
}

func TestSubmitProjectAppendsProjectAndUpdatesBootcamp(t *testing.T) {
	t.Parallel()
	svc, pub, _ := newTestSubmissionService(t, baseSnapshot())

	result, err := svc.SubmitProject(context.Background(), dto.ProjectSubmissionRequest{
		Name:        "Tracker",
		Description: "Tracks things",
		BootcampID:  "b1",
		GithubURL:   "https://github.com/bob/tracker",
		Image:       "data:image/jpeg;base64,QUJD",
	})
	if err != nil {
		t.Fatalf("SubmitProject: unexpected error: %v", err)
	}

	change := pub.calls[0]
	projects := decodeFile[models.Project](t, change.Files, "public/data/projects.json")
	if len(projects) != 2 || projects[1].Name != "Tracker" {
		t.Fatalf("staged projects: got %v, want Navigator then Tracker", projects)
	}

	bootcamps := decodeFile[models.Bootcamp](t, change.Files, "public/data/bootcamps.json")
	if diff := cmp.Diff([]string{result.EntityID}, bootcamps[0].ProjectIDs); diff != "" {
		t.Errorf("projectIds mismatch (-want +got):\n%s", diff)
	}
	// The untouched studentIds array must survive the round trip
	if diff := cmp.Diff([]string{"s1"}, bootcamps[0].StudentIDs); diff != "" {
		t.Errorf("studentIds mismatch (-want +got):\n%s", diff)
	}

	// Project images land in the projects upload directory
	wantPath := "public/uploads/projects/" + result.EntityID + ".jpeg"
	if change.Files[2].Path != wantPath {
		t.Errorf("image path: got %q, want %q", change.Files[2].Path, wantPath)
	}

	if change.BranchPrefix != "project-update" {
		t.Errorf("branch prefix: got %q, want project-update", change.BranchPrefix)
	}
}

func TestSubmitProfilePublisherFailure(t *testing.T) {
	t.Parallel()
	st := newTestStore(t, baseSnapshot())
	pub := &fakePublisher{err: errors.New("boom")}
	svc := NewSubmissionService(st, pub, zerolog.Nop())

	_, err := svc.SubmitProfile(context.Background(), dto.ProfileSubmissionRequest{
		Name:       "Bob",
		Location:   "Ankara",
		Role:       "Backend Developer",
		BootcampID: "b1",
	})
	if !errors.Is(err, apperrors.ErrSubmissionFailed) {
		t.Fatalf("SubmitProfile with failing publisher: got err %v, want ErrSubmissionFailed", err)
	}
}

func TestSubmitProfileDataUnavailable(t *testing.T) {
	t.Parallel()
	pub := &fakePublisher{}
	svc := NewSubmissionService(store.NewStore(t.TempDir()), pub, zerolog.Nop())

	_, err := svc.SubmitProfile(context.Background(), dto.ProfileSubmissionRequest{
		Name:       "Bob",
		Location:   "Ankara",
		Role:       "Backend Developer",
		BootcampID: "b1",
	})
	if !errors.Is(err, apperrors.ErrSubmissionFailed) {
		t.Fatalf("SubmitProfile with missing data: got err %v, want ErrSubmissionFailed", err)
	}
	if !errors.Is(err, apperrors.ErrDataUnavailable) {
		t.Fatalf("SubmitProfile with missing data: got err %v, want it to wrap ErrDataUnavailable", err)
	}
	if len(pub.calls) != 0 {
		t.Errorf("publisher calls: got %d, want 0", len(pub.calls))
	}
}

func TestSubmitProfileInitializesMissingIDArray(t *testing.T) {
	t.Parallel()
	snap := baseSnapshot()
	snap.Bootcamps[0].StudentIDs = nil
	svc, pub, _ := newTestSubmissionService(t, snap)

	result, err := svc.SubmitProfile(context.Background(), dto.ProfileSubmissionRequest{
		Name:       "Bob",
		Location:   "Ankara",
		Role:       "Backend Developer",
		BootcampID: "b1",
	})
	if err != nil {
		t.Fatalf("SubmitProfile: unexpected error: %v", err)
	}

	bootcamps := decodeFile[models.Bootcamp](t, pub.calls[0].Files, "public/data/bootcamps.json")
	if diff := cmp.Diff([]string{result.EntityID}, bootcamps[0].StudentIDs); diff != "" {
		t.Errorf("studentIds mismatch (-want +got):\n%s", diff)
	}
}
