package services

import (
	"strings"
	"testing"
)

func TestBuildListTasksQueryDefaults(t *testing.T) {
	query, args := buildListTasksQuery("user-1", TaskFilter{})

	if len(args) != 1 || args[0] != "user-1" {
		t.Fatalf("args = %v, want only the user id", args)
	}
	if strings.Contains(query, "ILIKE") {
		t.Fatalf("unexpected search predicate in %q", query)
	}
	if strings.Contains(query, "status =") {
		t.Fatalf("unexpected status predicate in %q", query)
	}
	if !strings.HasSuffix(query, "ORDER BY due_date ASC NULLS LAST") {
		t.Fatalf("query does not end with the default sort: %q", query)
	}
}

func TestBuildListTasksQuerySearch(t *testing.T) {
	query, args := buildListTasksQuery("user-1", TaskFilter{Query: "milk"})

	if len(args) != 2 {
		t.Fatalf("args = %v, want 2", args)
	}
	if args[1] != "%milk%" {
		t.Fatalf("search arg = %v, want wrapped in wildcards", args[1])
	}
	if !strings.Contains(query, "(title ILIKE $2 OR description ILIKE $2)") {
		t.Fatalf("missing search predicate in %q", query)
	}
}

func TestBuildListTasksQueryStatus(t *testing.T) {
	query, args := buildListTasksQuery("user-1", TaskFilter{Status: "Completed"})

	if len(args) != 2 || args[1] != "Completed" {
		t.Fatalf("args = %v, want the status as $2", args)
	}
	if !strings.Contains(query, "status = $2") {
		t.Fatalf("missing status predicate in %q", query)
	}
}

func TestBuildListTasksQueryCombined(t *testing.T) {
	query, args := buildListTasksQuery("user-1", TaskFilter{
		Query:  "report",
		Status: "Pending",
		Sort:   SortByPriority,
	})

	if len(args) != 3 {
		t.Fatalf("args = %v, want 3", args)
	}
	if args[1] != "%report%" || args[2] != "Pending" {
		t.Fatalf("args = %v, want search then status", args)
	}
	if !strings.Contains(query, "ILIKE $2") {
		t.Fatalf("search predicate not numbered $2 in %q", query)
	}
	if !strings.Contains(query, "status = $3") {
		t.Fatalf("status predicate not numbered $3 in %q", query)
	}
	if !strings.HasSuffix(query, "ORDER BY priority DESC, due_date ASC NULLS LAST") {
		t.Fatalf("wrong sort clause in %q", query)
	}
}

func TestBuildListTasksQuerySorts(t *testing.T) {
	cases := []struct {
		sort   string
		suffix string
	}{
		{SortByDueDate, "ORDER BY due_date ASC NULLS LAST"},
		{SortByPriority, "ORDER BY priority DESC, due_date ASC NULLS LAST"},
		{SortByCreatedAt, "ORDER BY created_at DESC"},
		// Unknown values fall back to the due date sort.
		{"nonsense", "ORDER BY due_date ASC NULLS LAST"},
	}

	for _, tc := range cases {
		query, _ := buildListTasksQuery("user-1", TaskFilter{Sort: tc.sort})
		if !strings.HasSuffix(query, tc.suffix) {
			t.Fatalf("sort %q: query %q does not end with %q", tc.sort, query, tc.suffix)
		}
	}
}
