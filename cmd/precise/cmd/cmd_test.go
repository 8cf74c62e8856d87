package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/solarlune/precise/internal/config"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	root := NewRootCommand()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEulerCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			"euler to quaternion",
			[]string{"euler", "90", "0", "0"},
			[]string{"{0.707107, 0.000000, 0.000000, 0.707107}", "{90.000000, 0.000000, 0.000000}", "{1.000000, 0.000000, 0.000000}", "90.000000"},
		},
		{
			"quaternion to euler",
			[]string{"euler", "--quaternion", "-p", "2", "0", "2", "0", "2"},
			[]string{"{0.00, 0.71, 0.00, 0.71}", "{0.00, 90.00, 0.00}"},
		},
		{
			"axis",
			[]string{"axis", "-p", "3", "90", "0", "5", "0"},
			[]string{"{0.000, 0.707, 0.000, 0.707}", "{0.000, 1.000, 0.000}"},
		},
		{
			"rotate",
			[]string{"rotate", "--euler", "0,90,0", "-p", "3", "0", "0", "1"},
			[]string{"point  {1.000, 0.000, 0.000}"},
		},
		{
			"rotate around an axis",
			[]string{"rotate", "--axis", "0,0,1", "--angle", "90", "-p", "3", "1", "0", "0"},
			[]string{"{0.000, 1.000, 0.000}"},
		},
		{
			"look",
			[]string{"look", "-p", "3", "1", "0", "0"},
			[]string{"{0.000, 0.707, 0.000, 0.707}", "{1.000, 0.000, 0.000}"},
		},
		{
			"angle",
			[]string{"angle", "--to", "0,90,0", "-p", "3"},
			[]string{"angle       90.000"},
		},
		{
			"slerp",
			[]string{"slerp", "--to", "0,90,0", "-p", "3", "0.5"},
			[]string{"{0.000, 0.383, 0.000, 0.924}", "{0.000, 45.000, 0.000}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output is missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestYAMLOutput(t *testing.T) {
	out, _, err := run(t, "euler", "-f", "yaml", "-p", "2", "90", "0", "0")
	if err != nil {
		t.Fatal(err)
	}

	var result map[string]interface{}
	if err := yaml.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}

	if angle, ok := result["angle"].(float64); !ok || angle != 90 {
		t.Errorf("angle = %v, want 90", result["angle"])
	}

	euler, ok := result["euler"].([]interface{})
	if !ok || len(euler) != 3 || euler[0] != 90.0 {
		t.Errorf("euler = %v, want [90 0 0]", result["euler"])
	}
}

func TestAnimateCommand(t *testing.T) {
	out, _, err := run(t, "animate", "--to", "0,90,0", "--steps", "2", "--ease", "InOutQuad", "-p", "1")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"t=0.0:", "t=0.5:", "t=1.0:", "{0.0, 45.0, 0.0}", "{0.0, 90.0, 0.0}"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}

	if _, _, err := run(t, "animate", "--ease", "wobble"); err == nil || !strings.Contains(err.Error(), "unknown easing") {
		t.Errorf("an unknown easing should fail, got %v", err)
	}
}

func TestNoiseCommand(t *testing.T) {
	for _, args := range [][]string{{"0.5"}, {"0.5", "1.25"}, {"0.5", "1.25", "2"}} {
		out, _, err := run(t, append([]string{"noise", "-f", "yaml"}, args...)...)
		if err != nil {
			t.Fatal(err)
		}

		var result map[string]float64
		if err := yaml.Unmarshal([]byte(out), &result); err != nil {
			t.Fatal(err)
		}

		if n := result["noise"]; n < 0 || n > 1 {
			t.Errorf("noise %v = %v, want a value in [0, 1]", args, n)
		}
	}
}

func TestGLTFCommand(t *testing.T) {
	path := writeFile(t, "scene.gltf", `{
		"asset": {"version": "2.0"},
		"nodes": [
			{"name": "root", "translation": [1, 0, 0], "rotation": [0, 0.7071067811865476, 0, 0.7071067811865476], "scale": [2, 2, 2], "children": [1]},
			{"name": "leaf", "translation": [0, 0, 1]}
		]
	}`)

	out, _, err := run(t, "gltf", "-p", "1", "--animations", path)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"root:", "leaf:", "position  {3.0, 0.0, 0.0}", "euler     {0.0, 90.0, 0.0}"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}

	out, _, err = run(t, "gltf", "-p", "1", "--local", path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "position  {0.0, 0.0, 1.0}") {
		t.Errorf("--local should print the leaf relative to its parent:\n%s", out)
	}

	if _, _, err := run(t, "gltf", filepath.Join(t.TempDir(), "missing.gltf")); err == nil {
		t.Error("a missing file should fail")
	}
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "precise.toml", "[output]\nprecision = 2\n\n[look]\nup = [0, 0, 1]\n")

	out, _, err := run(t, "--config", path, "euler", "90", "0", "0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "{0.71, 0.00, 0.00, 0.71}") {
		t.Errorf("precision from the config file was not used:\n%s", out)
	}

	out, _, err = run(t, "--config", path, "-p", "1", "euler", "90", "0", "0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "{0.7, 0.0, 0.0, 0.7}") {
		t.Errorf("--precision should override the config file:\n%s", out)
	}

	out, _, err = run(t, "--config", path, "-p", "0", "euler", "90", "0", "0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "{0.707107, 0.000000, 0.000000, 0.707107}") {
		t.Errorf("--precision 0 should mean the default precision, as it does in the config file:\n%s", out)
	}

	// Looking down -Y with up along +Z
	out, _, err = run(t, "--config", path, "look", "--", "0", "-1", "0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "up          {0.00, 0.00, 1.00}") {
		t.Errorf("the config's up vector was not used:\n%s", out)
	}
}

func TestErrors(t *testing.T) {
	if _, _, err := run(t, "euler", "1", "2"); err == nil {
		t.Error("euler with 2 arguments should fail")
	}

	if _, _, err := run(t, "euler", "a", "b", "c"); err == nil || !strings.Contains(err.Error(), "not a number") {
		t.Errorf("non-numeric arguments should fail, got %v", err)
	}

	if _, _, err := run(t, "--format", "xml", "euler", "1", "2", "3"); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("an unknown format should fail with ErrInvalidConfig, got %v", err)
	}

	if _, _, err := run(t, "slerp", "--from", "1,2", "0.5"); err == nil {
		t.Error("--from with 2 angles should fail")
	}
}

func TestVerbose(t *testing.T) {
	_, stderr, err := run(t, "-v", "axis", "90", "0", "0", "0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "precise: ") || !strings.Contains(stderr, "identity") {
		t.Errorf("verbose logging is missing:\n%s", stderr)
	}

	_, stderr, _ = run(t, "axis", "90", "0", "0", "0")
	if stderr != "" {
		t.Errorf("nothing should be logged without --verbose:\n%s", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "precise v"+Version) {
		t.Errorf("unexpected version output:\n%s", out)
	}
}
