package builder_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/masm-tools/masmtool/builder"
	"github.com/masm-tools/masmtool/variables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubToolchain writes fake ml/link executables that append their invocation
// to a log file. The assembler exits with asmExit.
func stubToolchain(t *testing.T, root string, asmExit int) (builder.ToolConfig, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub toolchain uses /bin/sh")
	}
	bin := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(bin, 0755))
	logPath := filepath.Join(root, "tools.log")

	ml := fmt.Sprintf("#!/bin/sh\nfor last; do :; done\necho \"ml $last\" >> '%s'\nexit %d\n", logPath, asmExit)
	link := fmt.Sprintf("#!/bin/sh\necho \"link $*\" >> '%s'\nexit 0\n", logPath)
	require.NoError(t, os.WriteFile(filepath.Join(bin, "ml"), []byte(ml), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "link"), []byte(link), 0755))

	return builder.ToolConfig{
		CompilerPath: filepath.Join("bin", "ml"),
		LinkerPath:   filepath.Join("bin", "link"),
	}, logPath
}

func readLog(t *testing.T, path string) []string {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(b)), "\n")
}

func runStubBuild(t *testing.T, native bool) {
	root := filepath.Join(t.TempDir(), "my proj")
	tools, logPath := stubToolchain(t, root, 0)

	var out bytes.Buffer
	code, err := builder.Build(twoFileTask(), tools, variables.NewContext(root, ""), builder.BuildOptions{
		Dialect: builder.Shell,
		Native:  native,
		Stdout:  &out,
		Stderr:  &out,
	})
	require.NoError(t, err, out.String())
	assert.Equal(t, 0, code)

	lines := readLog(t, logPath)
	require.Len(t, lines, 3, out.String())
	assert.Equal(t, "ml "+filepath.Join(root, "a.asm"), lines[0])
	assert.Equal(t, "ml "+filepath.Join(root, "b.asm"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "link "+filepath.Join(root, "a.obj")+" "+filepath.Join(root, "b.obj")), lines[2])
	assert.Contains(t, out.String(), "Build completed successfully!")
}

func TestScriptBuildRunsToolsInOrder(t *testing.T) {
	runStubBuild(t, false)
}

func TestNativeBuildRunsToolsInOrder(t *testing.T) {
	runStubBuild(t, true)
}

func runFailingBuild(t *testing.T, native bool) {
	root := t.TempDir()
	tools, logPath := stubToolchain(t, root, 3)

	var out bytes.Buffer
	code, err := builder.Build(twoFileTask(), tools, variables.NewContext(root, ""), builder.BuildOptions{
		Dialect: builder.Shell,
		Native:  native,
		Stdout:  &out,
		Stderr:  &out,
	})
	assert.Equal(t, 3, code)
	var failure *builder.ToolFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, 3, failure.Code)

	// the first assembler failure stops the build before anything else runs
	assert.Equal(t, []string{"ml " + filepath.Join(root, "a.asm")}, readLog(t, logPath))
	assert.Contains(t, out.String(), "Assembler error -- code 3")
}

func TestScriptBuildStopsAtFirstAssemblerFailure(t *testing.T) {
	runFailingBuild(t, false)
}

func TestNativeBuildStopsAtFirstAssemblerFailure(t *testing.T) {
	runFailingBuild(t, true)
}

func TestMissingToolFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	root := t.TempDir()
	tools := builder.ToolConfig{CompilerPath: "./does-not-exist", LinkerPath: "./nor-this"}

	code, err := builder.Build(twoFileTask(), tools, variables.NewContext(root, ""), builder.BuildOptions{
		Dialect: builder.Shell,
		Stdout:  &bytes.Buffer{},
		Stderr:  &bytes.Buffer{},
	})
	assert.NotEqual(t, 0, code)
	assert.Error(t, err)
}

func TestBuildLeavesNoScriptBehind(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	for _, asmExit := range []int{0, 3} {
		root := t.TempDir()
		tools, _ := stubToolchain(t, root, asmExit)

		var out bytes.Buffer
		code, _ := builder.Build(twoFileTask(), tools, variables.NewContext(root, ""), builder.BuildOptions{
			Dialect: builder.Shell,
			Stdout:  &out,
			Stderr:  &out,
		})
		assert.Equal(t, asmExit, code, out.String())

		leftover, err := filepath.Glob(filepath.Join(tmp, "masmbuild_*"))
		require.NoError(t, err)
		assert.Empty(t, leftover, "exit %d", asmExit)
	}
}

func TestWriteAndRemoveScript(t *testing.T) {
	plan, err := builder.Synthesize(twoFileTask(), builder.DefaultToolConfig(), variables.NewContext(t.TempDir(), ""))
	require.NoError(t, err)

	first, err := builder.WriteScript(plan, builder.Batch)
	require.NoError(t, err)
	second, err := builder.WriteScript(plan, builder.Batch)
	require.NoError(t, err)
	assert.NotEqual(t, first.Path, second.Path)
	assert.True(t, strings.HasPrefix(filepath.Base(first.Path), "masmbuild_"))
	assert.Equal(t, ".bat", filepath.Ext(first.Path))

	b, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	assert.Equal(t, plan.Render(builder.Batch), string(b))

	first.Remove()
	second.Remove()
	_, err = os.Stat(first.Path)
	assert.True(t, os.IsNotExist(err))

	// removing twice only logs
	first.Remove()
}

func TestDispatcherDeliversOnce(t *testing.T) {
	d := builder.NewDispatcher()
	ch := d.Expect(7)
	assert.Equal(t, 1, d.Pending())

	assert.False(t, d.Complete(8, 1))
	assert.True(t, d.Complete(7, 5))
	assert.False(t, d.Complete(7, 6))
	assert.Equal(t, 0, d.Pending())
	assert.Equal(t, 5, <-ch)
}

func TestDispatcherConcurrentExecutions(t *testing.T) {
	d := builder.NewDispatcher()
	const n = 16
	chans := make([]<-chan int, n)
	for i := 0; i < n; i++ {
		chans[i] = d.Expect(builder.ExecutionID(i))
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d.Complete(builder.ExecutionID(i), i*10)
		}(i)
	}
	wg.Wait()

	for i, ch := range chans {
		assert.Equal(t, i*10, <-ch)
	}
}

func TestParseDialect(t *testing.T) {
	d, err := builder.ParseDialect("bat")
	require.NoError(t, err)
	assert.Equal(t, builder.Batch, d)
	d, err = builder.ParseDialect("sh")
	require.NoError(t, err)
	assert.Equal(t, builder.Shell, d)
	_, err = builder.ParseDialect("pwsh")
	assert.Error(t, err)
}
