package resolve

import (
	"context"
	"fmt"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/notion"
)

// DatabaseQuerier fetches all records of a reference database.
type DatabaseQuerier interface {
	QueryDatabaseAll(ctx context.Context, databaseID string) ([]notion.Page, error)
}

// projectTitleProperties are the property names tried, in order, when reading
// a project record's title.
var projectTitleProperties = []string{"Name", "Title", "Project Name", "Project"}

// FetchPeople loads the People database into reference entities. Each person
// also gets a "<name> project" alias so project-flavored mentions of a person
// still link.
func FetchPeople(ctx context.Context, q DatabaseQuerier, databaseID string) ([]entities.ReferenceEntity, error) {
	pages, err := q.QueryDatabaseAll(ctx, databaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query people database: %w", err)
	}

	var people []entities.ReferenceEntity
	for _, page := range pages {
		name, ok := page.Title("Name")
		if !ok {
			continue
		}
		people = append(people, entities.ReferenceEntity{
			ID:      page.ID,
			Name:    name,
			Kind:    entities.EntityPerson,
			URL:     notion.PageURL(page.ID),
			Aliases: []string{name + " project"},
		})
	}
	return people, nil
}

// FetchProjects loads the Projects database into reference entities.
func FetchProjects(ctx context.Context, q DatabaseQuerier, databaseID string) ([]entities.ReferenceEntity, error) {
	pages, err := q.QueryDatabaseAll(ctx, databaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects database: %w", err)
	}

	var projects []entities.ReferenceEntity
	for _, page := range pages {
		name, ok := page.Title(projectTitleProperties...)
		if !ok {
			continue
		}
		projects = append(projects, entities.ReferenceEntity{
			ID:      page.ID,
			Name:    name,
			Kind:    entities.EntityProject,
			URL:     notion.PageURL(page.ID),
			Aliases: []string{name + " project", "the " + name + " project"},
		})
	}
	return projects, nil
}

// Names returns the canonical names of a reference set, preserving order.
func Names(ents []entities.ReferenceEntity) []string {
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		names = append(names, e.Name)
	}
	return names
}
