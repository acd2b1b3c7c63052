package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/eren/bootcamphub/internal/pkg/apperrors"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoadStudents(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, StudentsFile, `[
  {"id": "s1", "name": "Alice", "location": "Ankara", "role": "Backend Developer"},
  {"id": "s2", "name": "Bora", "location": "Izmir", "role": "Designer", "bio": "Hi"}
]`)
	st := NewStore(dir)

	students, err := st.LoadStudents()
	if err != nil {
		t.Fatalf("LoadStudents: unexpected error: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("LoadStudents: got %d records, want 2", len(students))
	}
	if students[0].ID != "s1" || students[1].ID != "s2" {
		t.Errorf("LoadStudents order: got [%s %s], want [s1 s2]", students[0].ID, students[1].ID)
	}

	// Optional fields are simply absent, not null
	if students[0].Bio != "" {
		t.Errorf("s1 bio: got %q, want empty", students[0].Bio)
	}
	if students[1].Bio != "Hi" {
		t.Errorf("s2 bio: got %q, want Hi", students[1].Bio)
	}
}

func TestLoadBootcampsMissingFile(t *testing.T) {
	t.Parallel()
	st := NewStore(t.TempDir())

	_, err := st.LoadBootcamps()
	if !errors.Is(err, apperrors.ErrDataUnavailable) {
		t.Fatalf("LoadBootcamps with missing file: got err %v, want ErrDataUnavailable", err)
	}
}

func TestLoadBootcampsMalformedJSON(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, BootcampsFile, `{"not": "an array"`)
	st := NewStore(dir)

	_, err := st.LoadBootcamps()
	if !errors.Is(err, apperrors.ErrDataUnavailable) {
		t.Fatalf("LoadBootcamps with malformed file: got err %v, want ErrDataUnavailable", err)
	}
}

func TestLoadSnapshotReadsAllCollections(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, BootcampsFile, `[{"id": "b1", "location": "Istanbul", "date": "2025-06-15", "studentIds": ["s1"]}]`)
	writeFile(t, dir, StudentsFile, `[{"id": "s1", "name": "Alice", "location": "Ankara", "role": "Backend Developer"}]`)
	writeFile(t, dir, InstructorsFile, `[]`)
	writeFile(t, dir, ProjectsFile, `[]`)
	writeFile(t, dir, SponsorsFile, `[]`)
	st := NewStore(dir)

	snap, err := st.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: unexpected error: %v", err)
	}
	if len(snap.Bootcamps) != 1 || snap.Bootcamps[0].ID != "b1" {
		t.Errorf("bootcamps: got %v, want [b1]", snap.Bootcamps)
	}
	if len(snap.Students) != 1 || snap.Students[0].Name != "Alice" {
		t.Errorf("students: got %v, want [Alice]", snap.Students)
	}
	if len(snap.Instructors) != 0 || len(snap.Projects) != 0 || len(snap.Sponsors) != 0 {
		t.Errorf("empty collections expected, got %+v", snap)
	}
}

func TestLoadSnapshotFailsOnAnyMissingCollection(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, BootcampsFile, `[]`)
	writeFile(t, dir, StudentsFile, `[]`)
	// instructors.json intentionally absent
	st := NewStore(dir)

	_, err := st.LoadSnapshot()
	if !errors.Is(err, apperrors.ErrDataUnavailable) {
		t.Fatalf("LoadSnapshot with partial data: got err %v, want ErrDataUnavailable", err)
	}
}

func TestLoadsAreIndependent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, StudentsFile, `[{"id": "s1", "name": "Alice"}]`)
	st := NewStore(dir)

	first, err := st.LoadStudents()
	if err != nil {
		t.Fatalf("LoadStudents: %v", err)
	}
	first[0].Name = "Mutated"

	// Each load re-reads the file, so one caller's mutation never leaks
	// into another caller's view.
	second, err := st.LoadStudents()
	if err != nil {
		t.Fatalf("LoadStudents: %v", err)
	}
	if second[0].Name != "Alice" {
		t.Errorf("second load: got %q, want Alice", second[0].Name)
	}
}
