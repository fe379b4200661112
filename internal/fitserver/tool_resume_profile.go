package fitserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_fit/internal/engine"
	"github.com/anatolykoptev/go_fit/internal/engine/fit"
	"github.com/anatolykoptev/go_fit/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ProfileSaveInput is the input for resume_profile_save.
type ProfileSaveInput struct {
	Name   string     `json:"name" jsonschema:"Profile name, unique key" validate:"required"`
	Resume fit.Resume `json:"resume" jsonschema:"Master resume to store" validate:"required"`
}

// ProfileSaveOutput confirms the stored profile.
type ProfileSaveOutput struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ProfileGetInput is the input for resume_profile_get.
type ProfileGetInput struct {
	Name string `json:"name" jsonschema:"Profile name" validate:"required"`
}

// ProfileGetOutput wraps the loaded resume.
type ProfileGetOutput struct {
	Name   string     `json:"name"`
	Resume fit.Resume `json:"resume"`
}

// ProfileListOutput lists stored profile names.
type ProfileListOutput struct {
	Profiles []string `json:"profiles"`
	Total    int      `json:"total"`
}

var errProfileStoreUnset = errors.New("resume profile store not configured (set DATABASE_URL)")

func registerResumeProfile(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_profile_save",
		Description: "Store a named master resume in PostgreSQL so batch scoring can reuse it without resubmitting. Upserts by name.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ProfileSaveInput) (*mcp.CallToolResult, ProfileSaveOutput, error) {
		engine.IncrProfileRequests()

		if err := toolutil.Validate(input); err != nil {
			return nil, ProfileSaveOutput{}, err
		}
		db := fit.GetProfileDB()
		if db == nil {
			return nil, ProfileSaveOutput{}, errProfileStoreUnset
		}

		if err := db.SaveProfile(ctx, input.Name, input.Resume); err != nil {
			return nil, ProfileSaveOutput{}, err
		}
		return nil, ProfileSaveOutput{Name: input.Name, Status: "saved"}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_profile_get",
		Description: "Load a named master resume previously stored with resume_profile_save.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ProfileGetInput) (*mcp.CallToolResult, ProfileGetOutput, error) {
		engine.IncrProfileRequests()

		if err := toolutil.Validate(input); err != nil {
			return nil, ProfileGetOutput{}, err
		}
		db := fit.GetProfileDB()
		if db == nil {
			return nil, ProfileGetOutput{}, errProfileStoreUnset
		}

		resume, err := db.GetProfile(ctx, input.Name)
		if err != nil {
			return nil, ProfileGetOutput{}, err
		}
		return nil, ProfileGetOutput{Name: input.Name, Resume: resume}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_profile_list",
		Description: "List stored resume profile names, most recently updated first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, ProfileListOutput, error) {
		engine.IncrProfileRequests()

		db := fit.GetProfileDB()
		if db == nil {
			return nil, ProfileListOutput{}, errProfileStoreUnset
		}

		names, err := db.ListProfiles(ctx)
		if err != nil {
			return nil, ProfileListOutput{}, err
		}
		return nil, ProfileListOutput{Profiles: names, Total: len(names)}, nil
	})
}
