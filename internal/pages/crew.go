package pages

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/nexus/pkg/grid"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

// CrewConfig describes the employees table. Its bulk action deletes every
// selected member from table; failures are joined and returned after all
// deletions have been attempted.
func CrewConfig(ctx context.Context, table types.Table[types.CrewMember], out io.Writer) grid.Config[types.CrewMember] {
	return grid.Config[types.CrewMember]{
		Columns: []grid.Column[types.CrewMember]{
			{Header: "Employee", Key: "name", Render: func(c types.CrewMember) string { return c.Name + " <" + c.Email + ">" }},
			{Header: "Role & Dept", Key: "role", Render: func(c types.CrewMember) string { return c.Role + " / " + c.Department }},
			{Header: "Status", Key: "status", Value: func(c types.CrewMember) string { return c.Status }},
			{Header: "Performance", Key: "performance_score", Render: func(c types.CrewMember) string { return percent(c.PerformanceScore) }},
		},
		SearchKeys: []grid.SearchKey[types.CrewMember]{
			{Key: "name", Value: func(c types.CrewMember) string { return c.Name }},
			{Key: "role", Value: func(c types.CrewMember) string { return c.Role }},
			{Key: "email", Value: func(c types.CrewMember) string { return c.Email }},
		},
		Filters: []grid.Filter[types.CrewMember]{
			{
				Key:     "status",
				Label:   "Status",
				Options: options(types.CrewStatuses),
				Value:   func(c types.CrewMember) string { return c.Status },
			},
			{
				Key:     "department",
				Label:   "Department",
				Options: options(types.Departments),
				Value:   func(c types.CrewMember) string { return c.Department },
			},
		},
		Action: grid.BulkAction(LabelDelete, func(ids []string) error {
			return deleteCrew(ctx, table, ids, out)
		}),
		SearchPlaceholder: "Search crew by name, role...",
	}
}

func deleteCrew(ctx context.Context, table types.Table[types.CrewMember], ids []string, out io.Writer) error {
	var errs []error
	deleted := 0
	for _, id := range ids {
		if _, err := table.Delete(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("deleting crew member %s: %w", id, err))
			continue
		}
		deleted++
	}
	if _, err := fmt.Fprintf(out, "Deleted %d members\n", deleted); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
