package treeprinter

import (
	"fmt"
	"strings"
)

const (
	StyleASCII   = 0
	StyleUnicode = 1
)

// signs 是一种风格下用到的全部连接符
type signs struct {
	branch    string // 非最后一个子节点
	connector string // 最后一个子节点
	space     string // 祖先还有后续兄弟时的竖线
	blank     string // 祖先已经是最后一个时的留白
}

var styleSigns = map[int]signs{
	StyleASCII:   {branch: ".-- ", connector: "'-- ", space: "|   ", blank: "    "},
	StyleUnicode: {branch: "├── ", connector: "└── ", space: "│   ", blank: "    "},
}

// MultiNode 是多叉树节点，Data 可以是任意类型
type MultiNode struct {
	Data     any
	Children []*MultiNode
}

// MultiTreePrinter 是多叉树打印器的配置结构
type MultiTreePrinter struct {
	Root     *MultiNode
	Style    int                     // 0 = ascii, 1 = unicode
	FormatFn func(*MultiNode) string // 可选的自定义格式化函数
}

// PrintMultiTree 按行打印一棵多叉树，子节点按 Children 的原始顺序输出
func PrintMultiTree(printer MultiTreePrinter) string {
	if printer.Root == nil {
		return "tree is empty\n"
	}

	s, ok := styleSigns[printer.Style]
	if !ok {
		s = styleSigns[StyleASCII]
	}

	format := printer.FormatFn
	if format == nil {
		format = func(n *MultiNode) string {
			return fmt.Sprintf("%v", n.Data)
		}
	}

	var b strings.Builder

	var dfs func(node *MultiNode, prefix string, isLast bool)
	dfs = func(node *MultiNode, prefix string, isLast bool) {
		sign := s.branch
		if isLast {
			sign = s.connector
		}
		fmt.Fprintf(&b, "%s%s%s\n", prefix, sign, format(node))

		childPrefix := prefix + s.space
		if isLast {
			childPrefix = prefix + s.blank
		}
		for i, child := range node.Children {
			dfs(child, childPrefix, i == len(node.Children)-1)
		}
	}

	dfs(printer.Root, "", true)
	return b.String()
}

// PrintForest 依次打印一组多叉树，树之间不留空行
// 根节点的顺序由调用方保证，这里原样输出
func PrintForest(roots []*MultiNode, style int, format func(*MultiNode) string) string {
	if len(roots) == 0 {
		return "forest is empty\n"
	}

	var b strings.Builder
	for _, root := range roots {
		b.WriteString(PrintMultiTree(MultiTreePrinter{
			Root:     root,
			Style:    style,
			FormatFn: format,
		}))
	}
	return b.String()
}
