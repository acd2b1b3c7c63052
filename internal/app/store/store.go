package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eren/bootcamphub/internal/app/models"
	"github.com/eren/bootcamphub/internal/pkg/apperrors"
)

// Collection file names inside the data directory. The same names are used
// for the staged file paths in a submission change set.
const (
	BootcampsFile   = "bootcamps.json"
	StudentsFile    = "students.json"
	InstructorsFile = "instructors.json"
	ProjectsFile    = "projects.json"
	SponsorsFile    = "sponsors.json"
)

// Store reads the five entity collections from flat JSON files. Every load
// re-reads the file, so callers always get their own slice; nothing here is
// shared or cached.
type Store struct {
	dataDir string
}

// NewStore creates a store reading from the given data directory
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Snapshot holds one consistent read of all five collections
type Snapshot struct {
	Bootcamps   []models.Bootcamp
	Students    []models.Student
	Instructors []models.Instructor
	Projects    []models.Project
	Sponsors    []models.Sponsor
}

// loadCollection reads one JSON array file. Read or parse failures are
// fatal for the current request and wrap ErrDataUnavailable.
func loadCollection[T any](dir, name string) ([]T, error) {
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", apperrors.ErrDataUnavailable, name, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", apperrors.ErrDataUnavailable, name, err)
	}

	return records, nil
}

// LoadBootcamps reads the bootcamp collection
func (s *Store) LoadBootcamps() ([]models.Bootcamp, error) {
	return loadCollection[models.Bootcamp](s.dataDir, BootcampsFile)
}

// LoadStudents reads the student collection
func (s *Store) LoadStudents() ([]models.Student, error) {
	return loadCollection[models.Student](s.dataDir, StudentsFile)
}

// LoadInstructors reads the instructor collection
func (s *Store) LoadInstructors() ([]models.Instructor, error) {
	return loadCollection[models.Instructor](s.dataDir, InstructorsFile)
}

// LoadProjects reads the project collection
func (s *Store) LoadProjects() ([]models.Project, error) {
	return loadCollection[models.Project](s.dataDir, ProjectsFile)
}

// LoadSponsors reads the sponsor collection
func (s *Store) LoadSponsors() ([]models.Sponsor, error) {
	return loadCollection[models.Sponsor](s.dataDir, SponsorsFile)
}

// LoadSnapshot reads all five collections in one pass
func (s *Store) LoadSnapshot() (*Snapshot, error) {
	bootcamps, err := s.LoadBootcamps()
	if err != nil {
		return nil, err
	}

	students, err := s.LoadStudents()
	if err != nil {
		return nil, err
	}

	instructors, err := s.LoadInstructors()
	if err != nil {
		return nil, err
	}

	projects, err := s.LoadProjects()
	if err != nil {
		return nil, err
	}

	sponsors, err := s.LoadSponsors()
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Bootcamps:   bootcamps,
		Students:    students,
		Instructors: instructors,
		Projects:    projects,
		Sponsors:    sponsors,
	}, nil
}
