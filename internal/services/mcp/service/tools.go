package service

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hauswerk/dokuhilfe/internal/doku/compose"
	"github.com/hauswerk/dokuhilfe/internal/doku/selection"
	"github.com/hauswerk/dokuhilfe/internal/storage"
)

// ReverseNameInput represents the MCP tool input for reversing a name.
type ReverseNameInput struct {
	Name string `json:"name" jsonschema:"name in 'Firstname Lastname' form"`
}

// ReverseNameResult represents the MCP tool output for reversing a name.
type ReverseNameResult struct {
	Reversed string `json:"reversed" jsonschema:"name in 'Lastname, Firstname' form"`
}

// BehaviorSelectionInput is one selection replayed into the ledger.
type BehaviorSelectionInput struct {
	CategoryID string `json:"category_id" jsonschema:"work-behavior category identifier"`
	Choice     string `json:"choice" jsonschema:"chosen phrasing for the category"`
}

// ComposeBehaviorInput represents the MCP tool input for behavior text.
type ComposeBehaviorInput struct {
	Selections        []BehaviorSelectionInput `json:"selections" jsonschema:"selections in click order; repeated clicks toggle"`
	PersonName        string                   `json:"person_name" jsonschema:"documented person (BE)"`
	DocumentingPerson string                   `json:"documenting_person,omitempty" jsonschema:"documenting group leader (GL)"`
}

// ComposeBehaviorResult represents the MCP tool output for behavior text.
type ComposeBehaviorResult struct {
	Header string `json:"header" jsonschema:"category header with polarity symbol; empty with no selections"`
	Text   string `json:"text" jsonschema:"full documentation sentence; empty with no selections"`
}

// ComposeActivityInput represents the MCP tool input for activity text.
type ComposeActivityInput struct {
	ActivityID        string `json:"activity_id" jsonschema:"activity identifier"`
	PersonName        string `json:"person_name" jsonschema:"documented person (BE)"`
	DocumentingPerson string `json:"documenting_person,omitempty" jsonschema:"documenting group leader (GL)"`
}

// ComposeActivityResult represents the MCP tool output for activity text.
type ComposeActivityResult struct {
	Title        string `json:"title" jsonschema:"activity title"`
	DocumentedBy string `json:"documented_by" jsonschema:"documenting person as 'Lastname, Firstname'"`
	Description  string `json:"description" jsonschema:"attributed activity description"`
	Measure      string `json:"measure" jsonschema:"support measure"`
}

func registerComposerTools(server *mcp.Server, store storage.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "reverse_name",
		Description: "Convert a name from 'Firstname Lastname' to 'Lastname, Firstname'; placeholders and single words pass through",
	}, reverseNameHandler())
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compose_behavior_text",
		Description: "Compose the work-behavior documentation header and sentence from a sequence of category selections",
	}, composeBehaviorHandler(store))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compose_activity_text",
		Description: "Compose the four copyable fields for a documented activity",
	}, composeActivityHandler(store))
}

func reverseNameHandler() mcp.ToolHandlerFor[ReverseNameInput, ReverseNameResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ReverseNameInput) (*mcp.CallToolResult, ReverseNameResult, error) {
		return nil, ReverseNameResult{Reversed: compose.ReverseName(input.Name)}, nil
	}
}

// composeBehaviorHandler replays the selections through a fresh ledger, so
// repeated clicks on the same choice cancel out exactly like in the UI.
func composeBehaviorHandler(store storage.Store) mcp.ToolHandlerFor[ComposeBehaviorInput, ComposeBehaviorResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ComposeBehaviorInput) (*mcp.CallToolResult, ComposeBehaviorResult, error) {
		stored, err := store.ListWorkBehaviorCategories(ctx)
		if err != nil {
			return nil, ComposeBehaviorResult{}, fmt.Errorf("list categories: %w", err)
		}
		labels := make(map[string]string, len(stored))
		categories := make([]compose.Category, 0, len(stored))
		for _, category := range stored {
			labels[category.ID] = category.Label
			categories = append(categories, compose.Category{
				ID:      category.ID,
				Label:   category.Label,
				Choices: category.Choices,
			})
		}

		ledger := selection.NewLedger()
		for _, sel := range input.Selections {
			ledger.Toggle(sel.CategoryID, labels[sel.CategoryID], sel.Choice)
		}
		output := compose.BehaviorText(ledger.Selections(), categories, input.PersonName, input.DocumentingPerson)
		return nil, ComposeBehaviorResult{Header: output.Header, Text: output.Text}, nil
	}
}

func composeActivityHandler(store storage.Store) mcp.ToolHandlerFor[ComposeActivityInput, ComposeActivityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ComposeActivityInput) (*mcp.CallToolResult, ComposeActivityResult, error) {
		activity, err := store.GetActivity(ctx, input.ActivityID)
		if err != nil {
			return nil, ComposeActivityResult{}, fmt.Errorf("get activity %q: %w", input.ActivityID, err)
		}
		output := compose.ActivityText(compose.Activity{
			Title:       activity.Title,
			Description: activity.Description,
			Measure:     activity.Measure,
		}, input.PersonName, input.DocumentingPerson)
		return nil, ComposeActivityResult{
			Title:        output.Title,
			DocumentedBy: output.DocumentedBy,
			Description:  output.Description,
			Measure:      output.Measure,
		}, nil
	}
}
