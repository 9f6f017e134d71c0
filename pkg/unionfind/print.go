package unionfind

import (
	"fmt"

	"github.com/SamuelSchlesinger/union-find/pkg/treeprinter"
)

// forestNodes 按当前 parent 数组原样搭出森林，不触发路径压缩
// 根节点按下标从小到大排，子节点也是，保证输出稳定
func (uf *UnionFind) forestNodes() []*treeprinter.MultiNode {
	nodes := make([]*treeprinter.MultiNode, len(uf.parent))
	for i := range uf.parent {
		nodes[i] = &treeprinter.MultiNode{Data: i}
	}

	var roots []*treeprinter.MultiNode
	for i, p := range uf.parent {
		if p == i {
			roots = append(roots, nodes[i])
		} else {
			nodes[p].Children = append(nodes[p].Children, nodes[i])
		}
	}
	return roots
}

// PrintForest 打印整个森林，每个集合一棵树，根节点带上秩和集合大小
// style: 0 = ascii, 1 = unicode
func (uf *UnionFind) PrintForest(style int) string {
	return treeprinter.PrintForest(uf.forestNodes(), style, func(n *treeprinter.MultiNode) string {
		i := n.Data.(int)
		if uf.parent[i] == i {
			return fmt.Sprintf("%d (rank=%d, size=%d)", i, uf.rank[i], uf.size[i])
		}
		return fmt.Sprintf("%d", i)
	})
}
