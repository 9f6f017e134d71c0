package unionfind_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/SamuelSchlesinger/union-find/pkg/unionfind"
)

// 搭一棵两层的树：4 是根，1 和 3 挂在下面，0 和 2 挂在 1 下面
func buildForest(t *testing.T) *unionfind.UnionFind {
	t.Helper()
	uf := unionfind.NewUnionFind(5)
	mustUnion(t, uf, 0, 1) // 1 成为秩 1 的根
	mustUnion(t, uf, 1, 2) // 2 挂到 1 下面
	mustUnion(t, uf, 3, 4) // 4 成为秩 1 的根
	mustUnion(t, uf, 1, 3) // 秩相同，1 挂到 4 下面
	return uf
}

func TestPrintForestUnicode(t *testing.T) {
	uf := buildForest(t)

	output := uf.PrintForest(1)
	t.Log("\n" + output)

	expected := "└── 4 (rank=2, size=5)\n" +
		"    ├── 1\n" +
		"    │   ├── 0\n" +
		"    │   └── 2\n" +
		"    └── 3\n"
	if output != expected {
		t.Errorf("输出不符合预期:\n%s\n期望:\n%s", output, expected)
	}
}

func TestPrintForestASCII(t *testing.T) {
	uf := unionfind.NewUnionFind(5)
	mustUnion(t, uf, 0, 1)
	mustUnion(t, uf, 1, 2)

	output := uf.PrintForest(0)
	t.Log("\n" + output)

	// 单元素集合各自一棵树，根节点都带上秩和大小
	expectedLines := []string{
		"'-- 1 (rank=1, size=3)",
		".-- 0",
		"'-- 2",
		"'-- 3 (rank=0, size=1)",
		"'-- 4 (rank=0, size=1)",
	}
	for _, line := range expectedLines {
		if !strings.Contains(output, line) {
			t.Errorf("输出缺少预期行: %q\n实际输出:\n%s", line, output)
		}
	}
}

// 打印只读 parent 数组，不该触发路径压缩
func TestPrintForestDoesNotCompress(t *testing.T) {
	uf := buildForest(t)

	before := uf.PrintForest(1)
	after := uf.PrintForest(1)
	if before != after {
		t.Errorf("连续两次打印的结果不一致:\n%s\n%s", before, after)
	}
}

func TestPrintForestEmpty(t *testing.T) {
	uf := unionfind.NewUnionFind(0)
	if output := uf.PrintForest(1); output != "forest is empty\n" {
		t.Errorf("空结构的输出不对: %q", output)
	}
}

func TestDOT(t *testing.T) {
	uf := unionfind.NewUnionFind(3)
	mustUnion(t, uf, 0, 1)

	output := uf.DOT()
	t.Log("\n" + output)

	if !strings.Contains(output, "digraph unionfind") {
		t.Errorf("缺少图名: %s", output)
	}
	// 0 挂在 1 下面，所以只有 n0->n1 这一条边
	if !strings.Contains(output, "n0->n1") {
		t.Errorf("缺少边 n0->n1: %s", output)
	}
	for _, node := range []string{"n0", "n1", "n2"} {
		if !strings.Contains(output, node) {
			t.Errorf("缺少节点 %s: %s", node, output)
		}
	}
	if strings.Contains(output, "n2->") {
		t.Errorf("根节点 n2 不该有出边: %s", output)
	}
}

func ExampleUnionFind_PrintForest() {
	uf := unionfind.NewUnionFind(3)
	uf.Union(0, 1)

	fmt.Print(uf.PrintForest(1))
	// Output:
	// └── 1 (rank=1, size=2)
	//     └── 0
	// └── 2 (rank=0, size=1)
}
