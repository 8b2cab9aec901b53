package portfolios

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	module "github.com/louisbranch/portfolio.gallery/internal/services/gallery/module"
	apperrors "github.com/louisbranch/portfolio.gallery/internal/services/gallery/platform/errors"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/view"
)

const (
	tracerName = "github.com/louisbranch/portfolio.gallery/internal/services/gallery/modules/portfolios"

	projectsUnavailableMessage = "project provider is not configured"
)

type service struct {
	projects storage.ProjectReader
	skills   []string
	tracer   trace.Tracer
}

func newService(deps module.Dependencies) service {
	return service{
		projects: deps.Projects,
		skills:   append([]string(nil), deps.Skills...),
		tracer:   otel.Tracer(tracerName),
	}
}

// listing loads the collection and composes the listing for the selection.
func (s service) listing(ctx context.Context, selectedSkills []string) (view.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "portfolios.listing",
		trace.WithAttributes(attribute.StringSlice("gallery.skills", selectedSkills)))
	defer span.End()

	if s.projects == nil {
		return view.Listing{}, apperrors.E(apperrors.KindUnavailable, projectsUnavailableMessage)
	}
	projects, err := s.projects.ListProjects(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list projects")
		return view.Listing{}, apperrors.Wrap(apperrors.KindUnknown, "list projects", err)
	}
	listing := view.ComposeListing(view.ListingInput{
		Projects:       projects,
		SkillOptions:   s.skills,
		SelectedSkills: selectedSkills,
	})
	span.SetAttributes(
		attribute.Int("gallery.projects", len(projects)),
		attribute.Int("gallery.cards", len(listing.Cards)),
	)
	return listing, nil
}

// detail loads one project and maps it to its detail page.
func (s service) detail(ctx context.Context, projectID string) (view.Detail, error) {
	ctx, span := s.tracer.Start(ctx, "portfolios.detail",
		trace.WithAttributes(attribute.String("gallery.project_id", projectID)))
	defer span.End()

	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return view.Detail{}, apperrors.EK(apperrors.KindNotFound, "gallery.error.not_found.title", "project id is required")
	}
	if s.projects == nil {
		return view.Detail{}, apperrors.E(apperrors.KindUnavailable, projectsUnavailableMessage)
	}
	p, err := s.projects.GetProject(ctx, projectID)
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindNotFound {
			span.RecordError(err)
			span.SetStatus(codes.Error, "get project")
		}
		return view.Detail{}, fmt.Errorf("get project %q: %w", projectID, err)
	}
	return view.NewDetail(p), nil
}
