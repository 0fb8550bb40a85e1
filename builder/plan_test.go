package builder_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/masm-tools/masmtool/builder"
	"github.com/masm-tools/masmtool/variables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoFileTask() builder.TaskDefinition {
	return builder.TaskDefinition{
		Type:         builder.TaskType,
		Label:        "Build",
		Files:        []string{"a.asm", "b.asm"},
		Output:       "out.exe",
		CompilerArgs: []string{"/coff", "/Zi"},
		LinkerArgs:   []string{"/DEBUG"},
	}
}

func TestValidationEmptyFiles(t *testing.T) {
	def := twoFileTask()
	def.Files = []string{}
	_, err := builder.Synthesize(def, builder.DefaultToolConfig(), variables.Context{})

	var vErr *builder.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "files", vErr.Field)
}

func TestValidationBlankOutput(t *testing.T) {
	def := twoFileTask()
	def.Output = "   "
	_, err := builder.Synthesize(def, builder.DefaultToolConfig(), variables.NewContext(t.TempDir(), ""))

	var vErr *builder.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "output", vErr.Field)
}

func TestNoWorkspace(t *testing.T) {
	_, err := builder.Synthesize(twoFileTask(), builder.DefaultToolConfig(), variables.Context{})
	assert.ErrorIs(t, err, builder.ErrNoWorkspace)
}

func TestObjectPath(t *testing.T) {
	assert.Equal(t, "sub/dir/name.obj", builder.ObjectPath("sub/dir/name.asm"))
	assert.Equal(t, "name.obj", builder.ObjectPath("name"))
	assert.Equal(t, "v1.2/x.obj", builder.ObjectPath("v1.2/x.asm"))
}

func TestPlanOrderAndPaths(t *testing.T) {
	root := t.TempDir()
	tools := builder.ToolConfig{
		CompilerPath: "ml.exe",
		LinkerPath:   filepath.Join("tools", "link.exe"),
		IncludePaths: []string{"inc", filepath.Join(root, "abs")},
		LibPaths:     []string{"lib"},
	}
	plan, err := builder.Synthesize(twoFileTask(), tools, variables.NewContext(root, ""))
	require.NoError(t, err)

	require.Len(t, plan.Steps, 3)
	a, b := filepath.Join(root, "a.asm"), filepath.Join(root, "b.asm")
	assert.Equal(t, []string{a, b}, plan.Sources)
	assert.Equal(t, []string{filepath.Join(root, "a.obj"), filepath.Join(root, "b.obj")}, plan.Objects)
	assert.Equal(t, filepath.Join(root, "out.exe"), plan.Output)

	assert.Equal(t, []string{
		"ml.exe", "/c",
		"/I", filepath.Join(root, "inc"), "/I", filepath.Join(root, "abs"),
		"/coff", "/Zi", a,
	}, plan.Steps[0].Argv)
	assert.Equal(t, builder.PhaseAssemble, plan.Steps[1].Phase)
	assert.Equal(t, b, plan.Steps[1].Argv[len(plan.Steps[1].Argv)-1])

	link := plan.Steps[2]
	assert.Equal(t, builder.PhaseLink, link.Phase)
	assert.Equal(t, root, link.Dir)
	assert.Equal(t, []string{
		filepath.Join(root, "tools", "link.exe"),
		plan.Objects[0], plan.Objects[1],
		"/LIBPATH:" + filepath.Join(root, "lib"),
		"/OUT:" + plan.Output,
		"/DEBUG",
	}, link.Argv)
}

func TestCompileOnlyFlagNotDuplicated(t *testing.T) {
	def := builder.DefaultTaskDefinition()
	root := t.TempDir()
	ctx := variables.NewContext(root, filepath.Join(root, "src", "main.asm"))
	plan, err := builder.Synthesize(def, builder.DefaultToolConfig(), ctx)
	require.NoError(t, err)

	count := 0
	for _, a := range plan.Steps[0].Argv {
		if a == "/c" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, filepath.Join(root, "src"), plan.Steps[0].Dir)
	assert.Equal(t, filepath.Join(root, "src", "main.exe"), plan.Output)
}

func TestSubstitutionPerFile(t *testing.T) {
	root := t.TempDir()
	def := twoFileTask()
	def.Files = []string{"${fileDirname}/${fileBasenameNoExtension}.asm", "lib/util.asm"}
	def.Output = "${workspaceFolder}/bin/${fileBasenameNoExtension}.exe"
	ctx := variables.NewContext(root, filepath.Join(root, "src", "prog.asm"))

	plan, err := builder.Synthesize(def, builder.DefaultToolConfig(), ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src", "prog.asm"), plan.Sources[0])
	assert.Equal(t, filepath.Join(root, "lib", "util.asm"), plan.Sources[1])
	assert.Equal(t, filepath.Join(root, "bin", "prog.exe"), plan.Output)
}

func TestDuplicateObjectsAreNotRejected(t *testing.T) {
	def := twoFileTask()
	def.Files = []string{"a.asm", "a.asm"}
	plan, err := builder.Synthesize(def, builder.DefaultToolConfig(), variables.NewContext(t.TempDir(), ""))
	require.NoError(t, err)
	assert.Equal(t, plan.Objects[0], plan.Objects[1])
}

func countPrefixed(lines []string, prefix string) int {
	n := 0
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

func TestRenderShell(t *testing.T) {
	root := t.TempDir()
	plan, err := builder.Synthesize(twoFileTask(), builder.DefaultToolConfig(), variables.NewContext(root, ""))
	require.NoError(t, err)

	text := plan.Render(builder.Shell)
	lines := strings.Split(text, "\n")
	assert.Equal(t, 2, countPrefixed(lines, "ml.exe "))
	assert.Equal(t, 1, countPrefixed(lines, "link.exe "))

	ia := strings.Index(text, "ml.exe /c /coff /Zi "+filepath.Join(root, "a.asm"))
	ib := strings.Index(text, "ml.exe /c /coff /Zi "+filepath.Join(root, "b.asm"))
	require.True(t, ia >= 0 && ib > ia, text)

	link := lines[0]
	for _, l := range lines {
		if strings.HasPrefix(l, "link.exe ") {
			link = l
		}
	}
	oa := strings.Index(link, filepath.Join(root, "a.obj"))
	ob := strings.Index(link, filepath.Join(root, "b.obj"))
	assert.True(t, oa > 0 && ob > oa, link)
	assert.True(t, strings.HasSuffix(link, "|| errlink $?"))
	assert.Contains(t, text, "Build completed successfully!")
}

func TestRenderBatch(t *testing.T) {
	root := filepath.Join(t.TempDir(), "my proj")
	plan, err := builder.Synthesize(twoFileTask(), builder.DefaultToolConfig(), variables.NewContext(root, ""))
	require.NoError(t, err)

	text := plan.Render(builder.Batch)
	assert.True(t, strings.HasPrefix(text, "@echo off\r\n"))
	lines := strings.Split(text, "\r\n")
	assert.Equal(t, 2, countPrefixed(lines, `"ml.exe" `))
	assert.Equal(t, 1, countPrefixed(lines, `"link.exe" `))
	assert.Equal(t, 2, countPrefixed(lines, "if errorlevel 1 goto errasm"))
	assert.Equal(t, 1, countPrefixed(lines, "if errorlevel 1 goto errlink"))
	assert.Contains(t, text, `"`+filepath.Join(root, "a.asm")+`"`)
	assert.Contains(t, text, `"/OUT:`+filepath.Join(root, "out.exe")+`"`)
	assert.Contains(t, text, ":errasm\r\necho Assembler error -- code %errorlevel%")
	assert.Contains(t, text, ":errlink\r\necho Linker error -- code %errorlevel%")
	assert.True(t, strings.HasSuffix(text, ":TheEnd\r\nexit /B %errorlevel%\r\n"))
}

func TestRenderQuotesShellMetacharacters(t *testing.T) {
	root := t.TempDir()
	def := twoFileTask()
	def.Files = []string{"it's $HOME.asm"}
	plan, err := builder.Synthesize(def, builder.DefaultToolConfig(), variables.NewContext(root, ""))
	require.NoError(t, err)

	text := plan.Render(builder.Shell)
	assert.Contains(t, text, `'`+filepath.Join(root, "it")+`'\''s $HOME.asm'`)
}
