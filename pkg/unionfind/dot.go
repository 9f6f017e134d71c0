package unionfind

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// DOT 导出当前森林的 graphviz 有向图，边的方向是子节点指向父节点
// 输出只用来肉眼查看结构，不能用来还原并查集
func (uf *UnionFind) DOT() string {
	g := gographviz.NewGraph()
	g.SetName("unionfind")
	g.SetDir(true)

	for i := range uf.parent {
		g.AddNode("unionfind", fmt.Sprintf("n%d", i), nil)
	}
	for i, p := range uf.parent {
		if p != i {
			g.AddEdge(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", p), true, nil)
		}
	}
	return g.String()
}
