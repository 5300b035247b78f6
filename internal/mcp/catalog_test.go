package mcp

import (
	"testing"
)

func TestCatalog_UniqueNamesAndValidMethods(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range Catalog() {
		if seen[def.Name] {
			t.Errorf("duplicate tool name %s", def.Name)
		}
		seen[def.Name] = true

		switch def.Method {
		case "GET", "POST", "PATCH":
		default:
			t.Errorf("%s: unexpected method %s", def.Name, def.Method)
		}
		if def.Path == "" || def.Path[0] != '/' {
			t.Errorf("%s: invalid path %q", def.Name, def.Path)
		}
		if def.AcceptsBody && def.Method == "GET" {
			t.Errorf("%s: GET tool must not accept a body", def.Name)
		}
	}
}

func TestBuildTool_GetOneSchema(t *testing.T) {
	var def ToolDef
	for _, d := range Catalog() {
		if d.Name == "get_program" {
			def = d
		}
	}
	tool := BuildTool(def)

	if tool.Name != "get_program" {
		t.Errorf("expected tool name get_program, got %s", tool.Name)
	}
	if _, ok := tool.InputSchema.Properties["id"]; !ok {
		t.Error("expected id property in schema")
	}
	if _, ok := tool.InputSchema.Properties["query_params"]; !ok {
		t.Error("expected query_params property in schema")
	}

	foundRequired := false
	for _, name := range tool.InputSchema.Required {
		if name == "id" {
			foundRequired = true
		}
	}
	if !foundRequired {
		t.Error("expected id to be required")
	}
}

func TestBuildTool_CreateSchema(t *testing.T) {
	var def ToolDef
	for _, d := range Catalog() {
		if d.Name == "create_submission" {
			def = d
		}
	}
	tool := BuildTool(def)

	if _, ok := tool.InputSchema.Properties["data"]; !ok {
		t.Error("expected data property in schema")
	}
	if _, ok := tool.InputSchema.Properties["id"]; ok {
		t.Error("create_submission must not take an id")
	}
}
