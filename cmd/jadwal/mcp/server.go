package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qu-tools/jadwal/internal/core/catalog"
	"github.com/qu-tools/jadwal/internal/core/conflict"
	"github.com/qu-tools/jadwal/internal/core/config"
	"github.com/qu-tools/jadwal/internal/core/db"
	"github.com/qu-tools/jadwal/internal/core/models"
	"github.com/qu-tools/jadwal/internal/core/store"
)

// CourseSummary represents one course in the list_courses result
type CourseSummary struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Color        string          `json:"color"`
	SectionCount int             `json:"section_count"`
	Sections     []SectionDetail `json:"sections"`
}

// SectionDetail represents one section of a course
type SectionDetail struct {
	UniqueID      string `json:"unique_id"`
	SectionNumber string `json:"section_number"`
	Type          string `json:"type"`
	Instructor    string `json:"instructor"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	Hours         int    `json:"hours"`
	ExamPeriodID  string `json:"exam_period_id,omitempty"`
}

// ScheduleDetail represents the active schedule in get_schedule results
type ScheduleDetail struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Sections  []SectionDetail     `json:"sections"`
	Conflicts map[string][]string `json:"conflicts,omitempty"`
}

// StartServer starts the MCP server
func StartServer(dbPath string) error {
	database, err := db.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = database.Close()
	}()

	s := server.NewMCPServer(
		"jadwal",
		"1.0.0",
	)

	listTool := mcp.NewTool("list_courses",
		mcp.WithDescription("List the imported university courses and their sections, with times, instructors, and open/closed status."),
		mcp.WithString("code",
			mcp.Description("Return only the course with this code")),
		mcp.WithBoolean("open_only",
			mcp.Description("Return only sections open for registration")),
	)
	s.AddTool(listTool, makeListCoursesHandler(database))

	scheduleTool := mcp.NewTool("get_schedule",
		mcp.WithDescription("Get the active schedule: its selected sections and any lecture-time or exam-period conflicts between them."),
	)
	s.AddTool(scheduleTool, makeGetScheduleHandler(database))

	checkTool := mcp.NewTool("check_conflicts",
		mcp.WithDescription("Check whether a section would conflict with the sections currently selected on the active schedule."),
		mcp.WithString("unique_id",
			mcp.Required(),
			mcp.Description("Unique id of the candidate section, as returned by list_courses")),
	)
	s.AddTool(checkTool, makeCheckConflictsHandler(database))

	return server.ServeStdio(s)
}

// loadState rebuilds the enriched catalog and loads the schedule store.
func loadState(database *db.DB) ([]models.Section, *catalog.Groups, *store.Store, error) {
	raw, err := database.LoadRawSections()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	overrides, err := database.ColorOverrides()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load color overrides: %w", err)
	}
	cfg, _ := config.Load()
	sections, groups := catalog.Build(raw, cfg.Palette, overrides)

	schedules, err := store.Load(database)
	if err != nil {
		return nil, nil, nil, err
	}
	return sections, groups, schedules, nil
}

func sectionDetail(s *models.Section) SectionDetail {
	return SectionDetail{
		UniqueID:      s.UniqueID,
		SectionNumber: s.SectionNumber,
		Type:          s.Type,
		Instructor:    s.Instructor,
		Time:          s.RawTime,
		Status:        s.Status,
		Hours:         s.Hours,
		ExamPeriodID:  s.ExamPeriodID,
	}
}

func makeListCoursesHandler(database *db.DB) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Code     string `json:"code,omitempty"`
			OpenOnly bool   `json:"open_only,omitempty"`
		}
		argsBytes, _ := json.Marshal(request.Params.Arguments)
		if err := json.Unmarshal(argsBytes, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		_, groups, _, err := loadState(database)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var results []CourseSummary
		for _, group := range groups.All() {
			if args.Code != "" && group.Code != args.Code {
				continue
			}

			course := CourseSummary{
				Code:  group.Code,
				Name:  group.Name,
				Color: group.Color,
			}
			for _, sec := range group.Sections {
				if args.OpenOnly && !sec.Open() {
					continue
				}
				course.Sections = append(course.Sections, sectionDetail(sec))
			}
			course.SectionCount = len(course.Sections)
			if course.SectionCount > 0 {
				results = append(results, course)
			}
		}

		resultJSON, err := json.Marshal(map[string]interface{}{
			"courses": results,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func makeGetScheduleHandler(database *db.DB) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sections, _, schedules, err := loadState(database)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		active := schedules.Active()
		selected := catalog.Resolve(active.Sections.IDs(), sections)

		detail := ScheduleDetail{
			ID:        active.ID,
			Name:      active.Name,
			Conflicts: conflict.Detect(selected),
		}
		for i := range selected {
			detail.Sections = append(detail.Sections, sectionDetail(&selected[i]))
		}

		resultJSON, err := json.Marshal(detail)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func makeCheckConflictsHandler(database *db.DB) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			UniqueID string `json:"unique_id"`
		}
		argsBytes, _ := json.Marshal(request.Params.Arguments)
		if err := json.Unmarshal(argsBytes, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.UniqueID == "" {
			return mcp.NewToolResultError("unique_id is required"), nil
		}

		sections, _, schedules, err := loadState(database)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		resolved := catalog.Resolve([]string{args.UniqueID}, sections)
		if len(resolved) == 0 {
			return mcp.NewToolResultError(fmt.Sprintf("no section with id %q in the current catalog", args.UniqueID)), nil
		}
		candidate := resolved[0]
		selected := catalog.Resolve(schedules.Active().Sections.IDs(), sections)

		resultJSON, err := json.Marshal(map[string]interface{}{
			"unique_id": args.UniqueID,
			"conflicts": conflict.Check(&candidate, selected),
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}
