package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog"

	"github.com/eren/bootcamphub/internal/app/models"
	"github.com/eren/bootcamphub/internal/app/models/dto"
	"github.com/eren/bootcamphub/internal/app/store"
	"github.com/eren/bootcamphub/internal/pkg/apperrors"
	"github.com/eren/bootcamphub/internal/pkg/datauri"
	"github.com/eren/bootcamphub/internal/pkg/publisher"
)

// Repository paths the change sets are staged against. These mirror the
// site layout: data files under public/data, uploaded images under
// public/uploads served at /uploads.
const (
	repoDataDir       = "public/data"
	repoPublicPrefix  = "public"
	profileUploadsDir = "/uploads"
	projectUploadsDir = "/uploads/projects"
)

// SubmissionService turns visitor submissions into pull requests against
// the data files. Every submission loads its own snapshot, mutates deep
// copies only, and publishes independently.
//
// Known race: two submissions started from the same base snapshot each
// publish the full file content, so the later pull request silently
// overwrites the earlier one's collection update at the file level.
type SubmissionService interface {
	SubmitProfile(ctx context.Context, req dto.ProfileSubmissionRequest) (*dto.SubmissionResponse, error)
	SubmitProject(ctx context.Context, req dto.ProjectSubmissionRequest) (*dto.SubmissionResponse, error)
}

// submissionServiceImpl implements the SubmissionService interface
type submissionServiceImpl struct {
	store     *store.Store
	publisher publisher.Publisher
	logger    zerolog.Logger
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(st *store.Store, pub publisher.Publisher, logger zerolog.Logger) SubmissionService {
	return &submissionServiceImpl{
		store:     st,
		publisher: pub,
		logger:    logger,
	}
}

// SubmitProfile appends a new student to the student collection and to the
// target bootcamp's studentIds, then publishes both updated files (plus the
// optional image) as one pull request.
func (s *submissionServiceImpl) SubmitProfile(ctx context.Context, req dto.ProfileSubmissionRequest) (*dto.SubmissionResponse, error) {
	currentStudents, err := s.store.LoadStudents()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSubmissionFailed, err)
	}
	currentBootcamps, err := s.store.LoadBootcamps()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSubmissionFailed, err)
	}

	// All mutation happens on deep copies; the loaded snapshot stays intact
	var students []models.Student
	var bootcamps []models.Bootcamp
	if err := copier.CopyWithOption(&students, currentStudents, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("%w: copying students: %v", apperrors.ErrSubmissionFailed, err)
	}
	if err := copier.CopyWithOption(&bootcamps, currentBootcamps, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("%w: copying bootcamps: %v", apperrors.ErrSubmissionFailed, err)
	}

	studentID := uuid.NewString()

	student := models.Student{
		ID:        studentID,
		Name:      req.Name,
		Location:  req.Location,
		Role:      req.Role,
		Bio:       req.Bio,
		GithubURL: req.GithubURL,
	}

	imageFile := s.stageImage(req.Image, studentID, profileUploadsDir)
	if imageFile != nil {
		student.Image = strings.TrimPrefix(imageFile.Path, repoPublicPrefix)
	}

	bootcampIdx := findBootcamp(bootcamps, req.BootcampID)
	if bootcampIdx == -1 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrBootcampNotFound, req.BootcampID)
	}

	bootcamps[bootcampIdx].StudentIDs = append(bootcamps[bootcampIdx].StudentIDs, studentID)
	students = append(students, student)

	files, err := buildChangeFiles(store.StudentsFile, students, bootcamps, imageFile)
	if err != nil {
		return nil, err
	}

	pr, err := s.publisher.CreatePullRequest(ctx, publisher.ChangeRequest{
		Title:        fmt.Sprintf("Add student profile: %s", req.Name),
		Body:         profileBody(req, bootcamps[bootcampIdx].Location, studentID),
		Files:        files,
		BranchPrefix: "profile-update",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSubmissionFailed, err)
	}

	s.logger.Info().
		Str("studentId", studentID).
		Str("bootcampId", req.BootcampID).
		Str("pullRequestUrl", pr.URL).
		Msg("Profile submission published")

	return &dto.SubmissionResponse{EntityID: studentID, PullRequestURL: pr.URL}, nil
}

// SubmitProject appends a new project to the project collection and to the
// target bootcamp's projectIds, then publishes both updated files (plus the
// optional image) as one pull request.
func (s *submissionServiceImpl) SubmitProject(ctx context.Context, req dto.ProjectSubmissionRequest) (*dto.SubmissionResponse, error) {
	currentProjects, err := s.store.LoadProjects()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSubmissionFailed, err)
	}
	currentBootcamps, err := s.store.LoadBootcamps()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSubmissionFailed, err)
	}

	var projects []models.Project
	var bootcamps []models.Bootcamp
	if err := copier.CopyWithOption(&projects, currentProjects, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("%w: copying projects: %v", apperrors.ErrSubmissionFailed, err)
	}
	if err := copier.CopyWithOption(&bootcamps, currentBootcamps, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("%w: copying bootcamps: %v", apperrors.ErrSubmissionFailed, err)
	}

	projectID := uuid.NewString()

	project := models.Project{
		ID:          projectID,
		Name:        req.Name,
		Description: req.Description,
		GithubURL:   req.GithubURL,
		DemoURL:     req.DemoURL,
	}

	imageFile := s.stageImage(req.Image, projectID, projectUploadsDir)
	if imageFile != nil {
		project.Image = strings.TrimPrefix(imageFile.Path, repoPublicPrefix)
	}

	bootcampIdx := findBootcamp(bootcamps, req.BootcampID)
	if bootcampIdx == -1 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrBootcampNotFound, req.BootcampID)
	}

	bootcamps[bootcampIdx].ProjectIDs = append(bootcamps[bootcampIdx].ProjectIDs, projectID)
	projects = append(projects, project)

	files, err := buildChangeFiles(store.ProjectsFile, projects, bootcamps, imageFile)
	if err != nil {
		return nil, err
	}

	pr, err := s.publisher.CreatePullRequest(ctx, publisher.ChangeRequest{
		Title:        fmt.Sprintf("Add new project: %s", req.Name),
		Body:         projectBody(req, bootcamps[bootcampIdx].Location, projectID),
		Files:        files,
		BranchPrefix: "project-update",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSubmissionFailed, err)
	}

	s.logger.Info().
		Str("projectId", projectID).
		Str("bootcampId", req.BootcampID).
		Str("pullRequestUrl", pr.URL).
		Msg("Project submission published")

	return &dto.SubmissionResponse{EntityID: projectID, PullRequestURL: pr.URL}, nil
}

// stageImage parses an inline image and stages it as a change file named
// after the new entity's id. A malformed value is not an error: the
// submission proceeds without an image.
func (s *submissionServiceImpl) stageImage(value, entityID, uploadsDir string) *publisher.ChangeFile {
	if value == "" {
		return nil
	}

	image, ok := datauri.ParseImage(value)
	if !ok {
		s.logger.Warn().Str("entityId", entityID).Msg("Submitted image is not a valid data URI, continuing without it")
		return nil
	}

	fileName := fmt.Sprintf("%s.%s", entityID, image.Subtype)
	return &publisher.ChangeFile{
		Path:    repoPublicPrefix + uploadsDir + "/" + fileName,
		Content: image.Payload,
	}
}

// findBootcamp returns the index of the bootcamp with the given id, or -1
func findBootcamp(bootcamps []models.Bootcamp, id string) int {
	for i := range bootcamps {
		if bootcamps[i].ID == id {
			return i
		}
	}
	return -1
}

// buildChangeFiles serializes the updated collections (and optional image)
// into the change set. Each entry is the complete new file content.
func buildChangeFiles[T any](entityFile string, entities []T, bootcamps []models.Bootcamp, imageFile *publisher.ChangeFile) ([]publisher.ChangeFile, error) {
	entityContent, err := marshalCollection(entities)
	if err != nil {
		return nil, fmt.Errorf("%w: serializing %s: %v", apperrors.ErrSubmissionFailed, entityFile, err)
	}
	bootcampContent, err := marshalCollection(bootcamps)
	if err != nil {
		return nil, fmt.Errorf("%w: serializing %s: %v", apperrors.ErrSubmissionFailed, store.BootcampsFile, err)
	}

	files := []publisher.ChangeFile{
		{Path: repoDataDir + "/" + entityFile, Content: entityContent},
		{Path: repoDataDir + "/" + store.BootcampsFile, Content: bootcampContent},
	}
	if imageFile != nil {
		files = append(files, *imageFile)
	}

	return files, nil
}

// marshalCollection renders a collection with two-space indentation so pull
// request diffs against the hand-edited data files stay minimal
func marshalCollection(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// profileBody renders the human-readable pull request description for a
// student profile submission
func profileBody(req dto.ProfileSubmissionRequest, bootcampLocation, studentID string) string {
	var b strings.Builder
	b.WriteString("## New Student Profile\n\n")
	fmt.Fprintf(&b, "- **Name**: %s\n", req.Name)
	fmt.Fprintf(&b, "- **Location**: %s\n", req.Location)
	fmt.Fprintf(&b, "- **Role**: %s\n", req.Role)
	fmt.Fprintf(&b, "- **Bootcamp**: %s\n", bootcampLocation)
	if req.GithubURL != "" {
		fmt.Fprintf(&b, "- **GitHub**: %s\n", req.GithubURL)
	}
	if req.Bio != "" {
		fmt.Fprintf(&b, "\n### Bio\n%s\n", req.Bio)
	}
	b.WriteString("\n### Technical Details\n")
	fmt.Fprintf(&b, "- Profile ID: `%s`\n", studentID)
	fmt.Fprintf(&b, "- Added to bootcamp: `%s`\n", req.BootcampID)
	return b.String()
}

// projectBody renders the human-readable pull request description for a
// project submission
func projectBody(req dto.ProjectSubmissionRequest, bootcampLocation, projectID string) string {
	var b strings.Builder
	b.WriteString("## New Project Submission\n\n")
	fmt.Fprintf(&b, "- **Project Name**: %s\n", req.Name)
	fmt.Fprintf(&b, "- **Description**: %s\n", req.Description)
	fmt.Fprintf(&b, "- **Bootcamp**: %s\n", bootcampLocation)
	fmt.Fprintf(&b, "- **GitHub**: %s\n", req.GithubURL)
	if req.DemoURL != "" {
		fmt.Fprintf(&b, "- **Demo URL**: %s\n", req.DemoURL)
	}
	b.WriteString("\n### Technical Details\n")
	fmt.Fprintf(&b, "- Project ID: `%s`\n", projectID)
	fmt.Fprintf(&b, "- Added to bootcamp: `%s`\n", req.BootcampID)
	return b.String()
}
