package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/willibrandon/gopbx/cmd/gopbx/output"
	"github.com/willibrandon/gopbx/project"
)

// fixtureProject is a minimal complete project: one tool target "App"
// with Debug and Release configurations.
const fixtureProject = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 46;
	objects = {
		EE0000000000000000000001 /* main.c in Sources */ = {isa = PBXBuildFile; fileRef = FF0000000000000000000001 /* main.c */; };
		FF0000000000000000000001 /* main.c */ = {isa = PBXFileReference; fileEncoding = 4; lastKnownFileType = sourcecode.c.c; name = main.c; path = main.c; sourceTree = "<group>"; };
		AA0000000000000000000002 = {
			isa = PBXGroup;
			children = (
				FF0000000000000000000001 /* main.c */,
			);
			sourceTree = "<group>";
		};
		BB0000000000000000000001 /* App */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = CC0000000000000000000002;
			buildPhases = (
				DD0000000000000000000001 /* Sources */,
			);
			name = App;
			productName = App;
			productType = "com.apple.product-type.tool";
		};
		AA0000000000000000000001 /* Project object */ = {
			isa = PBXProject;
			buildConfigurationList = CC0000000000000000000001;
			compatibilityVersion = "Xcode 8.0";
			mainGroup = AA0000000000000000000002;
			targets = (
				BB0000000000000000000001 /* App */,
			);
		};
		DD0000000000000000000001 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
				EE0000000000000000000001 /* main.c in Sources */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
		CF0000000000000000000001 /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
			};
			name = Debug;
		};
		CF0000000000000000000002 /* Release */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
			};
			name = Release;
		};
		CF0000000000000000000003 /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				PRODUCT_NAME = App;
			};
			name = Debug;
		};
		CF0000000000000000000004 /* Release */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				PRODUCT_NAME = App;
			};
			name = Release;
		};
		CC0000000000000000000001 = {
			isa = XCConfigurationList;
			buildConfigurations = (
				CF0000000000000000000001 /* Debug */,
				CF0000000000000000000002 /* Release */,
			);
			defaultConfigurationName = Release;
		};
		CC0000000000000000000002 = {
			isa = XCConfigurationList;
			buildConfigurations = (
				CF0000000000000000000003 /* Debug */,
				CF0000000000000000000004 /* Release */,
			);
			defaultConfigurationName = Release;
		};
	};
	rootObject = AA0000000000000000000001 /* Project object */;
}
`

// writeTestBundle creates an .xcodeproj bundle with the fixture project.
func writeTestBundle(t *testing.T) string {
	t.Helper()
	bundle := filepath.Join(t.TempDir(), "App.xcodeproj")
	if err := os.MkdirAll(bundle, 0755); err != nil {
		t.Fatalf("Failed to create bundle dir: %v", err)
	}
	path := filepath.Join(bundle, "project.pbxproj")
	if err := os.WriteFile(path, []byte(fixtureProject), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return bundle
}

func bufferConsole() (*output.Console, *bytes.Buffer) {
	var buf bytes.Buffer
	return output.NewConsole(&buf, &buf, output.VerbosityQuiet), &buf
}

func TestTargetsCommand(t *testing.T) {
	bundle := writeTestBundle(t)
	console, buf := bufferConsole()

	cmd := NewTargetsCommand(console)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{bundle})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := buf.String(); got != "App\n" {
		t.Errorf("Expected target list 'App', got %q", got)
	}
}

func TestConfigsCommand(t *testing.T) {
	bundle := writeTestBundle(t)
	console, buf := bufferConsole()

	cmd := NewConfigsCommand(console)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{bundle})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := buf.String(); got != "Debug\nRelease\n" {
		t.Errorf("Expected config list 'Debug, Release', got %q", got)
	}
}

func TestAddDefineCommand(t *testing.T) {
	bundle := writeTestBundle(t)
	console, _ := bufferConsole()

	run := func(args ...string) error {
		cmd := NewAddDefineCommand(console)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	t.Run("adds defines in place", func(t *testing.T) {
		if err := run(bundle, "App", "Debug", "DEBUG_MENU=1", "TRACE"); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		proj, err := project.Open(bundle)
		if err != nil {
			t.Fatalf("Failed to reload project: %v", err)
		}
		view, err := proj.TargetConfiguration("App", "Debug")
		if err != nil {
			t.Fatalf("Failed to resolve configuration: %v", err)
		}
		want := []string{project.InheritedMarker, "DEBUG_MENU=1", "TRACE"}
		got := view.Strings(project.SettingPreprocessorDefinitions)
		if strings.Join(got, "|") != strings.Join(want, "|") {
			t.Errorf("Expected defines %v, got %v", want, got)
		}
	})

	t.Run("repeat run is idempotent", func(t *testing.T) {
		if err := run(bundle, "App", "Debug", "DEBUG_MENU=1"); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		proj, _ := project.Open(bundle)
		view, _ := proj.TargetConfiguration("App", "Debug")
		got := view.Strings(project.SettingPreprocessorDefinitions)
		if len(got) != 3 {
			t.Errorf("Expected 3 values after repeat run, got %v", got)
		}
	})

	t.Run("unknown target fails without writing", func(t *testing.T) {
		before, _ := os.ReadFile(filepath.Join(bundle, "project.pbxproj"))

		err := run(bundle, "Nope", "Debug", "FOO")
		if err == nil {
			t.Fatal("Expected error for unknown target")
		}
		if !strings.Contains(err.Error(), "Nope") {
			t.Errorf("Expected error to name the target, got: %v", err)
		}

		after, _ := os.ReadFile(filepath.Join(bundle, "project.pbxproj"))
		if !bytes.Equal(before, after) {
			t.Error("Expected project file untouched after a failed edit")
		}
	})
}

func TestAddSourceCommand(t *testing.T) {
	bundle := writeTestBundle(t)
	console, _ := bufferConsole()

	cmd := NewAddSourceCommand(console)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{bundle, "App", "src/engine/render.c", "--compile-flags", "-O3"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	proj, err := project.Open(bundle)
	if err != nil {
		t.Fatalf("Failed to reload project: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(bundle, "project.pbxproj"))
	text := string(data)
	if !strings.Contains(text, "render.c in Sources") {
		t.Error("Expected new build file annotated with its phase")
	}
	if !strings.Contains(text, "COMPILER_FLAGS = \"-O3\"") {
		t.Error("Expected per-file compiler flags in the build file settings")
	}
	if !strings.Contains(text, "/* engine */") {
		t.Error("Expected a group per path segment")
	}
	if err := proj.Graph().ValidateReferences(); err != nil {
		t.Errorf("Expected no dangling references, got: %v", err)
	}
}

func TestAddSourceCommand_UnsupportedExtension(t *testing.T) {
	bundle := writeTestBundle(t)
	console, _ := bufferConsole()

	cmd := NewAddSourceCommand(console)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{bundle, "App", "notes.xyz"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("Expected error for unsupported file type")
	}
}

func TestAddIncludeCommand(t *testing.T) {
	bundle := writeTestBundle(t)
	console, _ := bufferConsole()

	cmd := NewAddIncludeCommand(console)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{bundle, "App", "vendor/include", "third_party"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	proj, err := project.Open(bundle)
	if err != nil {
		t.Fatalf("Failed to reload project: %v", err)
	}
	for _, config := range []string{"Debug", "Release"} {
		view, err := proj.TargetConfiguration("App", config)
		if err != nil {
			t.Fatalf("Failed to resolve %s: %v", config, err)
		}
		got := view.Strings(project.SettingHeaderSearchPaths)
		if len(got) != 2 || got[0] != "vendor/include" || got[1] != "third_party" {
			t.Errorf("Expected both search paths in %s, got %v", config, got)
		}
	}
}

func TestSettingsCommand(t *testing.T) {
	bundle := writeTestBundle(t)

	t.Run("get key", func(t *testing.T) {
		console, buf := bufferConsole()
		cmd := NewSettingsCommand(console)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"get", bundle, "App", "Debug", "PRODUCT_NAME"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if got := buf.String(); got != "App\n" {
			t.Errorf("Expected 'App', got %q", got)
		}
	})

	t.Run("get lists keys", func(t *testing.T) {
		console, buf := bufferConsole()
		cmd := NewSettingsCommand(console)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"get", bundle, "App", "Debug"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if got := buf.String(); got != "PRODUCT_NAME\n" {
			t.Errorf("Expected key list, got %q", got)
		}
	})

	t.Run("set persists", func(t *testing.T) {
		console, _ := bufferConsole()
		cmd := NewSettingsCommand(console)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"set", bundle, "App", "Release", "OTHER_LDFLAGS", "-lz"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		proj, _ := project.Open(bundle)
		view, err := proj.TargetConfiguration("App", "Release")
		if err != nil {
			t.Fatalf("Failed to resolve configuration: %v", err)
		}
		if got := view.GetString("OTHER_LDFLAGS"); got != "-lz" {
			t.Errorf("Expected '-lz', got %q", got)
		}
	})

	t.Run("set with append builds a list", func(t *testing.T) {
		console, _ := bufferConsole()
		for _, flag := range []string{"-Wall", "-Wextra"} {
			cmd := NewSettingsCommand(console)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs([]string{"set", bundle, "App", "Release", "OTHER_CFLAGS", flag, "--append"})
			if err := cmd.Execute(); err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
		}

		proj, _ := project.Open(bundle)
		view, _ := proj.TargetConfiguration("App", "Release")
		got := view.Strings("OTHER_CFLAGS")
		if len(got) != 2 || got[0] != "-Wall" || got[1] != "-Wextra" {
			t.Errorf("Expected appended flags, got %v", got)
		}
	})
}

func TestTouchCommand(t *testing.T) {
	bundle := writeTestBundle(t)
	console, _ := bufferConsole()

	out := filepath.Join(t.TempDir(), "Copy.xcodeproj")
	cmd := NewTouchCommand(console)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{bundle, "-o", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	copied, err := project.Open(out)
	if err != nil {
		t.Fatalf("Failed to reload exported project: %v", err)
	}
	if len(copied.TargetNames()) != 1 || copied.TargetNames()[0] != "App" {
		t.Errorf("Expected target 'App' after touch, got %v", copied.TargetNames())
	}
}
