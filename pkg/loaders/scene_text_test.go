package loaders

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/lights"
)

func writeSceneFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.scene")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScene_FullDescription(t *testing.T) {
	path := writeSceneFile(t, `
# demo scene
background 0.1 0.2 0.3
camera 0 1 3  0 0 -2  0 1 0  50

material lambert 0.8 0.2 0.2
material cooktorrance 0.9 0.9 0.9 0.3 1.0 0.5

sphere 0 0 -2 0.5 0
sphere 1.2 0 -2 0.5 1  # trailing comment

light point 2 3 0  1 1 1  20
light directional 0 -1 0  1 1 1  0.5
light area 0 4 -2  0 -1 0  1.5 1.0  1 1 0.9  4
`)

	s, camera, err := LoadScene(path, nil)
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}

	if s.PrimitiveCount() != 2 {
		t.Errorf("Expected 2 spheres, got %d", s.PrimitiveCount())
	}
	if len(s.Materials) != 2 {
		t.Errorf("Expected 2 materials, got %d", len(s.Materials))
	}
	if len(s.Lights) != 3 {
		t.Fatalf("Expected 3 lights, got %d", len(s.Lights))
	}

	expectedTypes := []lights.LightType{lights.LightTypePoint, lights.LightTypeDirectional, lights.LightTypeArea}
	for i, expected := range expectedTypes {
		if s.Lights[i].Type() != expected {
			t.Errorf("Light %d: expected type %s, got %s", i, expected, s.Lights[i].Type())
		}
	}

	if s.Background.Subtract(core.NewVec3(0.1, 0.2, 0.3)).Length() > 1e-9 {
		t.Errorf("Unexpected background %v", s.Background)
	}
	if camera.Position.Subtract(core.NewVec3(0, 1, 3)).Length() > 1e-9 {
		t.Errorf("Unexpected camera position %v", camera.Position)
	}
	if math.Abs(camera.VFov-50) > 1e-9 {
		t.Errorf("Expected vfov 50, got %f", camera.VFov)
	}
}

func TestLoadScene_DefaultCameraWhenOmitted(t *testing.T) {
	path := writeSceneFile(t, "material lambert 0.5 0.5 0.5\nsphere 0 0 -2 1 0\n")

	_, camera, err := LoadScene(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if camera.VFov != 45 {
		t.Errorf("Expected default vfov 45, got %f", camera.VFov)
	}
}

func TestLoadScene_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine string
	}{
		{
			name:     "unknown directive",
			content:  "background 0 0 0\ntriangle 1 2 3\n",
			wantLine: "line 2",
		},
		{
			name:     "sphere before material",
			content:  "sphere 0 0 -2 1 0\n",
			wantLine: "line 1",
		},
		{
			name:     "bad number",
			content:  "material lambert 0.5 abc 0.5\n",
			wantLine: "line 1",
		},
		{
			name:     "wrong arity",
			content:  "material lambert 0.5 0.5\n",
			wantLine: "line 1",
		},
		{
			name:     "fractional material index",
			content:  "material lambert 0.5 0.5 0.5\nsphere 0 0 -2 1 0.5\n",
			wantLine: "line 2",
		},
		{
			name:     "unknown light type",
			content:  "light spot 0 0 0 1 1 1 5\n",
			wantLine: "line 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSceneFile(t, tt.content)
			_, _, err := LoadScene(path, nil)
			if err == nil {
				t.Fatal("Expected parse error")
			}
			if !strings.Contains(err.Error(), tt.wantLine) {
				t.Errorf("Expected error to reference %q, got: %v", tt.wantLine, err)
			}
		})
	}
}

func TestLoadScene_MissingFile(t *testing.T) {
	if _, _, err := LoadScene(filepath.Join(t.TempDir(), "nope.scene"), nil); err == nil {
		t.Error("Expected error for missing file")
	}
}
