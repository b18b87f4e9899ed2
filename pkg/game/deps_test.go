package game

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/gonewx/bladefury"

// projectRoot 通过 runtime.Caller 定位仓库根目录
func projectRoot(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// This file is at pkg/game/deps_test.go
	return filepath.Join(filepath.Dir(filename), "..", "..")
}

// packageImports 返回目录下非测试文件的全部导入路径
func packageImports(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s) error = %v", dir, err)
	}

	fset := token.NewFileSet()
	var imports []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("ParseFile(%s) error = %v", name, err)
		}
		for _, spec := range f.Imports {
			path, _ := strconv.Unquote(spec.Path.Value)
			imports = append(imports, path)
		}
	}
	return imports
}

// TestCoreHasNoRenderingDependency 模拟核心及其依赖的本仓库包都不能引入 ebiten
// 否则终端前端也需要 cgo 和窗口系统头文件
func TestCoreHasNoRenderingDependency(t *testing.T) {
	root := projectRoot(t)
	visited := map[string]bool{}
	queue := []string{modulePath + "/pkg/game"}

	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]
		if visited[pkg] {
			continue
		}
		visited[pkg] = true

		dir := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(pkg, modulePath+"/")))
		for _, imp := range packageImports(t, dir) {
			if strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten") {
				t.Errorf("%s 导入了 %s", pkg, imp)
			}
			if strings.HasPrefix(imp, modulePath+"/") {
				queue = append(queue, imp)
			}
		}
	}

	for _, want := range []string{"/pkg/entities", "/pkg/utils", "/pkg/config"} {
		if !visited[modulePath+want] {
			t.Errorf("依赖遍历未覆盖 %s", want)
		}
	}
}
