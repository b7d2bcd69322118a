package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"two-mirrors", "Two Mirrors"},
		{"phong_test", "Phong Test"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.txt",
			content: `# Scene: Two Mirrors
# Description: facing reflective spheres

NEAR 1
RES 10 10`,
			expected: SceneInfo{
				ID:          "complete_metadata",
				Name:        "Two Mirrors",
				Description: "facing reflective spheres",
				Type:        "file",
			},
		},
		{
			name:    "no_metadata.toml",
			content: `output = "x.ppm"`,
			expected: SceneInfo{
				ID:   "no_metadata",
				Name: "No Metadata",
				Type: "file",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}

			result, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata failed: %v", err)
			}

			tc.expected.FilePath = path
			if result != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, result)
			}
		})
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.toml", "ignored.pbrt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("# Scene: x\n"), 0644); err != nil {
			t.Fatalf("Failed to write test file: %v", err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles failed: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scene files, got %d", len(scenes))
	}
	if scenes[0].ID != "a" || scenes[1].ID != "b" {
		t.Errorf("Expected scenes sorted by id, got %s, %s", scenes[0].ID, scenes[1].ID)
	}

	missing, err := ListSceneFiles(filepath.Join(dir, "nope"))
	if err != nil || len(missing) != 0 {
		t.Errorf("Expected empty list for missing dir, got %v, %v", missing, err)
	}
}

func TestListAllScenes_BuiltinsFirst(t *testing.T) {
	scenes, err := ListAllScenes(t.TempDir())
	if err != nil {
		t.Fatalf("ListAllScenes failed: %v", err)
	}
	builtins := BuiltinScenes()
	if len(scenes) != len(builtins) {
		t.Fatalf("Expected only built-in scenes, got %d", len(scenes))
	}
	for i, info := range builtins {
		if scenes[i].ID != info.ID {
			t.Errorf("Expected %s at %d, got %s", info.ID, i, scenes[i].ID)
		}
		if _, ok := NewBuiltinScene(info.ID); !ok {
			t.Errorf("Built-in scene %s cannot be constructed", info.ID)
		}
	}
	if _, ok := NewBuiltinScene("nonexistent"); ok {
		t.Error("Expected unknown built-in scene to be rejected")
	}
}
