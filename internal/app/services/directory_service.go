package services

import (
	"github.com/eren/bootcamphub/internal/app/models/dto"
)

// DirectoryService flattens the per-bootcamp associations into site-wide
// listings. An entity appearing under several bootcamps is listed once,
// annotated with the bootcamp it was first seen under.
type DirectoryService interface {
	ListStudents() ([]dto.StudentEntry, error)
	ListInstructors() ([]dto.InstructorEntry, error)
	ListProjects() ([]dto.ProjectEntry, error)
	ListSponsors() ([]dto.SponsorEntry, error)
}

// directoryServiceImpl implements the DirectoryService interface
type directoryServiceImpl struct {
	bootcampService BootcampService
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(bootcampService BootcampService) DirectoryService {
	return &directoryServiceImpl{bootcampService: bootcampService}
}

// ListStudents lists every student across all bootcamps
func (s *directoryServiceImpl) ListStudents() ([]dto.StudentEntry, error) {
	details, err := s.bootcampService.GetAllBootcampDetails()
	if err != nil {
		return nil, err
	}

	entries := make([]dto.StudentEntry, 0)
	seen := make(map[string]bool)
	for _, bootcamp := range details {
		for _, student := range bootcamp.Students {
			if seen[student.ID] {
				continue
			}
			seen[student.ID] = true
			entries = append(entries, dto.StudentEntry{
				Student:          student,
				BootcampID:       bootcamp.ID,
				BootcampLocation: bootcamp.Location,
			})
		}
	}

	return entries, nil
}

// ListInstructors lists every instructor across all bootcamps
func (s *directoryServiceImpl) ListInstructors() ([]dto.InstructorEntry, error) {
	details, err := s.bootcampService.GetAllBootcampDetails()
	if err != nil {
		return nil, err
	}

	entries := make([]dto.InstructorEntry, 0)
	seen := make(map[string]bool)
	for _, bootcamp := range details {
		for _, instructor := range bootcamp.Instructors {
			if seen[instructor.ID] {
				continue
			}
			seen[instructor.ID] = true
			entries = append(entries, dto.InstructorEntry{
				Instructor:       instructor,
				BootcampID:       bootcamp.ID,
				BootcampLocation: bootcamp.Location,
			})
		}
	}

	return entries, nil
}

// ListProjects lists every project across all bootcamps
func (s *directoryServiceImpl) ListProjects() ([]dto.ProjectEntry, error) {
	details, err := s.bootcampService.GetAllBootcampDetails()
	if err != nil {
		return nil, err
	}

	entries := make([]dto.ProjectEntry, 0)
	seen := make(map[string]bool)
	for _, bootcamp := range details {
		for _, project := range bootcamp.Projects {
			if seen[project.ID] {
				continue
			}
			seen[project.ID] = true
			entries = append(entries, dto.ProjectEntry{
				Project:          project,
				BootcampID:       bootcamp.ID,
				BootcampLocation: bootcamp.Location,
			})
		}
	}

	return entries, nil
}

// ListSponsors lists every sponsor across all bootcamps
func (s *directoryServiceImpl) ListSponsors() ([]dto.SponsorEntry, error) {
	details, err := s.bootcampService.GetAllBootcampDetails()
	if err != nil {
		return nil, err
	}

	entries := make([]dto.SponsorEntry, 0)
	seen := make(map[string]bool)
	for _, bootcamp := range details {
		for _, sponsor := range bootcamp.Sponsors {
			if seen[sponsor.ID] {
				continue
			}
			seen[sponsor.ID] = true
			entries = append(entries, dto.SponsorEntry{
				Sponsor:          sponsor,
				BootcampID:       bootcamp.ID,
				BootcampLocation: bootcamp.Location,
			})
		}
	}

	return entries, nil
}
