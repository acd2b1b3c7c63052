package services

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/eren/bootcamphub/internal/app/models"
	"github.com/eren/bootcamphub/internal/app/store"
	"github.com/eren/bootcamphub/internal/pkg/apperrors"
)

// BootcampService defines the read-side join operations over the entity
// collections. Joins are lenient: ids with no matching record are dropped
// rather than failing the whole read, so a mid-migration data snapshot
// still renders.
type BootcampService interface {
	GetBootcampDetails(id string) (*models.BootcampDetails, error)
	GetAllBootcampDetails() ([]models.BootcampDetails, error)
}

// bootcampServiceImpl implements the BootcampService interface
type bootcampServiceImpl struct {
	store *store.Store
}

// NewBootcampService creates a new bootcamp service instance
func NewBootcampService(st *store.Store) BootcampService {
	return &bootcampServiceImpl{store: st}
}

// snapshotIndex holds per-collection id lookups built once per snapshot
type snapshotIndex struct {
	students    map[string]models.Student
	instructors map[string]models.Instructor
	projects    map[string]models.Project
	sponsors    map[string]models.Sponsor
}

func indexSnapshot(snap *store.Snapshot) snapshotIndex {
	return snapshotIndex{
		students:    lo.KeyBy(snap.Students, func(s models.Student) string { return s.ID }),
		instructors: lo.KeyBy(snap.Instructors, func(i models.Instructor) string { return i.ID }),
		projects:    lo.KeyBy(snap.Projects, func(p models.Project) string { return p.ID }),
		sponsors:    lo.KeyBy(snap.Sponsors, func(s models.Sponsor) string { return s.ID }),
	}
}

// resolveIDs maps each id to its record, preserving id order and dropping
// ids with no match. The result is never nil.
func resolveIDs[T any](ids []string, byID map[string]T) []T {
	resolved := make([]T, 0, len(ids))
	for _, id := range ids {
		if record, ok := byID[id]; ok {
			resolved = append(resolved, record)
		}
	}
	return resolved
}

// resolveDetails produces the joined view of one bootcamp
func resolveDetails(bootcamp models.Bootcamp, idx snapshotIndex) models.BootcampDetails {
	return models.BootcampDetails{
		Bootcamp:    bootcamp,
		Students:    resolveIDs(bootcamp.StudentIDs, idx.students),
		Instructors: resolveIDs(bootcamp.InstructorIDs, idx.instructors),
		Projects:    resolveIDs(bootcamp.ProjectIDs, idx.projects),
		Sponsors:    resolveIDs(bootcamp.SponsorIDs, idx.sponsors),
	}
}

// GetBootcampDetails retrieves one bootcamp with its associations resolved.
// A bootcamp with no associations is a valid result; an unknown id is
// ErrBootcampNotFound.
func (s *bootcampServiceImpl) GetBootcampDetails(id string) (*models.BootcampDetails, error) {
	snap, err := s.store.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	for _, bootcamp := range snap.Bootcamps {
		if bootcamp.ID == id {
			details := resolveDetails(bootcamp, indexSnapshot(snap))
			return &details, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", apperrors.ErrBootcampNotFound, id)
}

// GetAllBootcampDetails retrieves every bootcamp with its associations
// resolved, in collection order.
func (s *bootcampServiceImpl) GetAllBootcampDetails() ([]models.BootcampDetails, error) {
	snap, err := s.store.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	idx := indexSnapshot(snap)
	details := make([]models.BootcampDetails, 0, len(snap.Bootcamps))
	for _, bootcamp := range snap.Bootcamps {
		details = append(details, resolveDetails(bootcamp, idx))
	}

	return details, nil
}
