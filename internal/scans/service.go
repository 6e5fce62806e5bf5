package scans

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"coherence-backend/internal/insight/aggregate"
	"coherence-backend/internal/insight/category"
	"coherence-backend/internal/insight/narrative"
	"coherence-backend/internal/insight/partition"
	"coherence-backend/internal/insight/severity"
	"coherence-backend/internal/shared/metrics"
	"coherence-backend/internal/usage"
)

// topSystemCount bounds the system list shown on the dashboard.
const topSystemCount = 5

// Service implements scan creation and the derived read models.
type Service struct {
	Repo        Repo
	Usage       *usage.Service
	DemoEnabled bool
}

// CreateInput carries the raw scan payload from the scanner client.
type CreateInput struct {
	CoherenceScore int              `json:"coherenceScore"`
	Issues         []IssueInput     `json:"issues"`
	Components     []ComponentInput `json:"components"`
}

// IssueInput is one issue as submitted by the scanner.
type IssueInput struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Load            int      `json:"load"`
	Recommendations []string `json:"recommendations"`
}

// ComponentInput is one raw measurement as submitted by the scanner.
type ComponentInput struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
}

// ErrQuotaExceeded wraps the usage limit error for handler mapping.
var ErrQuotaExceeded = usage.ErrLimitReached

// Create validates the payload, consumes one scan from the user's quota and
// stores the scan.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (Scan, error) {
	if strings.TrimSpace(userID) == "" {
		return Scan{}, errors.New("user id is required")
	}
	for _, issue := range input.Issues {
		if strings.TrimSpace(issue.Name) == "" {
			return Scan{}, errors.New("issue name is required")
		}
	}
	for _, comp := range input.Components {
		if strings.TrimSpace(comp.Category) == "" {
			return Scan{}, errors.New("component category is required")
		}
	}

	if s.Usage != nil {
		if _, err := s.Usage.Consume(ctx, userID, 1); err != nil {
			if errors.Is(err, ErrQuotaExceeded) {
				metrics.IncScanQuotaRejected()
			}
			return Scan{}, err
		}
	}

	scan := Scan{
		ID:             uuid.NewString(),
		UserID:         userID,
		CoherenceScore: clampScore(input.CoherenceScore),
		CreatedAt:      time.Now().UTC(),
	}
	for _, issue := range input.Issues {
		scan.Issues = append(scan.Issues, Issue{
			ID:              uuid.NewString(),
			Name:            issue.Name,
			Description:     issue.Description,
			Load:            issue.Load,
			Recommendations: issue.Recommendations,
		})
	}
	for _, comp := range input.Components {
		scan.Components = append(scan.Components, Component{
			ID:       uuid.NewString(),
			Category: comp.Category,
			Name:     comp.Name,
			Level:    comp.Level,
		})
	}

	if err := s.Repo.Create(ctx, scan); err != nil {
		return Scan{}, err
	}
	metrics.IncScanCreated()
	metrics.ObserveCoherenceScore(float64(scan.CoherenceScore))
	return scan, nil
}

// Get returns the scan if it belongs to userID.
func (s *Service) Get(ctx context.Context, userID, scanID string) (Scan, error) {
	if s.DemoEnabled && scanID == "demo-scan" {
		return DemoScan(userID), nil
	}
	scan, err := s.Repo.GetByID(ctx, scanID)
	if err != nil {
		return Scan{}, err
	}
	if scan.UserID != userID {
		return Scan{}, ErrForbidden
	}
	return scan, nil
}

// List returns the user's scans, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Scan, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Latest returns the user's most recent scan, or the demo dataset when the
// user has none and demo data is enabled.
func (s *Service) Latest(ctx context.Context, userID string) (Scan, error) {
	scan, err := s.Repo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) && s.DemoEnabled {
			return DemoScan(userID), nil
		}
		return Scan{}, err
	}
	return scan, nil
}

// Systems derives the per-system load summaries for a scan.
func (s *Service) Systems(scan Scan) []aggregate.SystemSummary {
	components := make([]aggregate.Component, 0, len(scan.Components))
	for _, comp := range scan.Components {
		components = append(components, aggregate.Component{
			Category: comp.Category,
			Name:     comp.Name,
			Level:    comp.Level,
		})
	}
	return aggregate.TopSystems(aggregate.SystemLoads(components), topSystemCount)
}

// ClassifiedIssue is an issue annotated with its severity level.
type ClassifiedIssue struct {
	Issue
	Severity severity.Level `json:"severity"`
}

// IssueOverview is the derived issue read model: classified issues plus the
// two partition projections.
type IssueOverview struct {
	Issues     []ClassifiedIssue          `json:"issues"`
	ByPriority partition.ByPriority       `json:"byPriority"`
	ByCategory []partition.CategoryBucket `json:"byCategory"`
}

// Issues classifies and partitions a scan's issues.
func (s *Service) Issues(scan Scan) IssueOverview {
	classified := make([]ClassifiedIssue, 0, len(scan.Issues))
	partitionable := make([]partition.Issue, 0, len(scan.Issues))
	for _, issue := range scan.Issues {
		classified = append(classified, ClassifiedIssue{
			Issue:    issue,
			Severity: severity.Classify(issue.Load, severity.IssueThresholds),
		})
		partitionable = append(partitionable, partition.Issue{
			ID:   issue.ID,
			Name: issue.Name,
			Load: issue.Load,
		})
	}
	return IssueOverview{
		Issues:     classified,
		ByPriority: partition.ByLoad(partitionable),
		ByCategory: partition.ByCategory(partitionable, category.IssueRules),
	}
}

// Summary builds the natural-language summary for a scan, including the
// relationship sentence for the two most loaded systems when available.
func (s *Service) Summary(scan Scan) string {
	issues := make([]narrative.Issue, 0, len(scan.Issues))
	for _, issue := range scan.Issues {
		issues = append(issues, narrative.Issue{Name: issue.Name, Load: issue.Load})
	}

	text := narrative.Summarize(issues, scan.CoherenceScore, BodyState)

	systems := s.Systems(scan)
	if len(systems) >= 2 {
		text = fmt.Sprintf("%s %s", text, narrative.DescribeRelationship(systems[0].Key, systems[1].Key))
	}
	return text
}

// BodyState describes the overall body state for a coherence score. It is
// the collaborator the summarizer interpolates.
func BodyState(score int) string {
	switch {
	case score >= 80:
		return "Kroppen din er i god balanse."
	case score >= 50:
		return "Kroppen din er i lett ubalanse."
	default:
		return "Kroppen din er i betydelig ubalanse."
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
